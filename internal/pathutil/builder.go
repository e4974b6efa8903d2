package pathutil

import (
	"strconv"
	"strings"
)

type segment struct {
	text    string
	bracket bool
}

// PathBuilder builds dotted diagnostic paths such as
// "paths./pets.get.responses.200" with push/pop semantics. The string is
// only materialized when String is called.
type PathBuilder struct {
	segments []segment
}

// Push appends a dotted segment.
func (p *PathBuilder) Push(s string) {
	p.segments = append(p.segments, segment{text: s})
}

// PushKey appends a mapping key. Keys that would make the rendered path
// ambiguous are written in brackets: `properties["a.b"]`.
func (p *PathBuilder) PushKey(key string) {
	if key == "" || strings.ContainsAny(key, ".[]\"") {
		p.segments = append(p.segments, segment{text: "[" + strconv.Quote(key) + "]", bracket: true})
		return
	}
	p.Push(key)
}

// PushIndex appends a list index: "[0]".
func (p *PathBuilder) PushIndex(i int) {
	p.segments = append(p.segments, segment{text: "[" + strconv.Itoa(i) + "]", bracket: true})
}

// Pop removes the last segment, if any.
func (p *PathBuilder) Pop() {
	if n := len(p.segments); n > 0 {
		p.segments = p.segments[:n-1]
	}
}

// Len returns the number of segments.
func (p *PathBuilder) Len() int { return len(p.segments) }

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
}

// String renders the path.
func (p *PathBuilder) String() string {
	var b strings.Builder
	for i, seg := range p.segments {
		if i > 0 && !seg.bracket {
			b.WriteByte('.')
		}
		b.WriteString(seg.text)
	}
	return b.String()
}
