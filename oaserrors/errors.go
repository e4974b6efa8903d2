// Package oaserrors provides structured error types for oasdraft.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between a document that could
// not be decoded, a dangling schema reference, an editor operation that the
// document state does not allow, a storage backend failure and a bad
// configuration value.
//
// # Error Categories
//
//   - ParseError: JSON/YAML decoding failures of editor documents or exports
//   - ReferenceError: $ref values that do not point at a component schema
//   - ValidationError: editor operations rejected by the current document state
//   - StorageError: key-value backend failures while loading or saving
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	doc, err := document.Decode(data)
//	if errors.Is(err, oaserrors.ErrParse) {
//	    // fall back to document.Default()
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a decoding failure occurred.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a schema reference could not be resolved.
	ErrReference = errors.New("reference error")

	// ErrDanglingReference indicates a well-formed reference to a schema
	// name that is not in the registry.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrValidation indicates an edit was rejected.
	ErrValidation = errors.New("validation error")

	// ErrStorage indicates a key-value backend failure.
	ErrStorage = errors.New("storage error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode a document.
type ParseError struct {
	// Path is the file path, storage key or other source identifier
	Path string
	// Format is the encoding that failed to decode ("json" or "yaml")
	Format string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg = e.Format + " " + msg
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a $ref that does not resolve to a component
// schema.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// IsDangling is true when the ref is well-formed but names no schema
	IsDangling bool
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsDangling {
		msg = "dangling reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrDanglingReference when IsDangling is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	return target == ErrDanglingReference && e.IsDangling
}

// ValidationError represents an editor operation the document does not allow.
type ValidationError struct {
	// Path is the location of the entity being edited (e.g., "paths./pets")
	Path string
	// Field is the specific field name with the issue
	Field string
	// Value is the problematic value (may be nil)
	Value any
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " at " + e.Path
		if e.Field != "" {
			msg += "." + e.Field
		}
	} else if e.Field != "" {
		msg += " at " + e.Field
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StorageError represents a failure of a key-value backend.
type StorageError struct {
	// Backend names the store implementation ("file", "redis", "memory")
	Backend string
	// Op is the failed operation ("get", "set", "delete")
	Op string
	// Key is the storage key involved
	Key string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *StorageError) Error() string {
	msg := "storage error"
	if e.Backend != "" {
		msg += " (" + e.Backend + ")"
	}
	if e.Op != "" {
		msg += ": " + e.Op
		if e.Key != "" {
			msg += " " + e.Key
		}
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
