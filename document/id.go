package document

import "github.com/google/uuid"

// NewID returns a fresh opaque identifier for an editable entity. IDs are
// only used to address entities while editing and never reach the export.
func NewID() string {
	return uuid.NewString()
}
