package pathutil

import "sync"

const (
	defaultDepth = 8
	maxPooled    = 64
)

var pool = sync.Pool{
	New: func() any {
		return &PathBuilder{segments: make([]segment, 0, defaultDepth)}
	},
}

// Get returns an empty PathBuilder from the pool.
func Get() *PathBuilder {
	p := pool.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns p to the pool. Unusually deep builders are left to the GC.
func Put(p *PathBuilder) {
	if p == nil || cap(p.segments) > maxPooled {
		return
	}
	pool.Put(p)
}
