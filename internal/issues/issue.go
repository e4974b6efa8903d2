// Package issues provides the diagnostic record reported by the check
// package.
package issues

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasdraft/internal/severity"
)

// Issue is a single problem found in a document.
type Issue struct {
	// Code identifies the kind of problem, e.g. "duplicate-path".
	Code string `json:"code"`
	// Severity is the level of the problem.
	Severity severity.Severity `json:"severity"`
	// Path is the dotted location of the problem, e.g.
	// "paths./pets.get.responses".
	Path string `json:"path"`
	// Message is a human readable description.
	Message string `json:"message"`
	// Suggestion is an optional fix, such as a generated operationId.
	Suggestion string `json:"suggestion,omitempty"`
	// Operation identifies the operation the problem belongs to, if any.
	Operation *OperationContext `json:"operation,omitempty"`
}

// String renders the issue on one line, with a second line for the
// suggestion when there is one.
func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(symbol(i.Severity))
	b.WriteByte(' ')
	b.WriteString(i.Path)
	if i.Operation != nil && !i.Operation.IsEmpty() {
		b.WriteByte(' ')
		b.WriteString(i.Operation.String())
	}
	fmt.Fprintf(&b, ": %s", i.Message)
	if i.Suggestion != "" {
		fmt.Fprintf(&b, "\n    Suggestion: %s", i.Suggestion)
	}
	return b.String()
}

func symbol(s severity.Severity) string {
	switch s {
	case severity.SeverityError:
		return "✗"
	case severity.SeverityWarning:
		return "⚠"
	case severity.SeverityInfo:
		return "ℹ"
	default:
		return "?"
	}
}

// OperationContext names the operation an issue was found in.
type OperationContext struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	OperationID string `json:"operationId,omitempty"`
}

// IsEmpty reports whether c identifies nothing.
func (c OperationContext) IsEmpty() bool {
	return c.Method == "" && c.Path == ""
}

// String renders c as "(GET /pets, operationId: listPets)".
func (c OperationContext) String() string {
	if c.IsEmpty() {
		return ""
	}
	s := "(" + strings.ToUpper(c.Method) + " " + c.Path
	if c.OperationID != "" {
		s += ", operationId: " + c.OperationID
	}
	return s + ")"
}
