// Package severity defines the levels of diagnostics reported by the check
// package. Levels are ordered: Info < Warning < Error.
package severity

import "fmt"

// Severity is the level of a diagnostic.
type Severity int

const (
	// SeverityInfo marks something the exporter silently normalizes.
	SeverityInfo Severity = iota
	// SeverityWarning marks an inconsistency the exporter resolves with a
	// tie-break rule, losing some of the user's input.
	SeverityWarning
	// SeverityError marks output that will not be a usable document.
	SeverityError
)

// String returns the lower-case name of s.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Parse maps a level name to a Severity.
func Parse(name string) (Severity, error) {
	switch name {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityInfo, fmt.Errorf("severity: unknown level %q", name)
	}
}
