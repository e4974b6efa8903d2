package document

import (
	"github.com/erraggy/oasdraft/internal/pathutil"
	"github.com/erraggy/oasdraft/oaserrors"
)

// RefTo returns the reference string for the registry schema called name.
func RefTo(name string) string {
	return pathutil.SchemaRef(name)
}

// RefName returns the registry schema name a reference points at. It fails
// with a *oaserrors.ReferenceError when ref is not a local component schema
// reference.
func RefName(ref string) (string, error) {
	name, ok := pathutil.SchemaName(ref)
	if !ok {
		return "", &oaserrors.ReferenceError{Ref: ref, Message: "not a component schema reference"}
	}
	return name, nil
}

// SchemaNames returns the registry names in order, as offered by the
// reference picker.
func (d *Document) SchemaNames() []string {
	names := make([]string, 0, len(d.Schemas))
	for _, s := range d.Schemas {
		names = append(names, s.Name)
	}
	return names
}

// LookupSchema returns the first registry entry named name.
func (d *Document) LookupSchema(name string) (NamedSchema, bool) {
	for _, s := range d.Schemas {
		if s.Name == name {
			return s, true
		}
	}
	return NamedSchema{}, false
}

// Resolve returns the registry entry a reference points at. A well-formed
// reference to a missing name fails with a dangling *oaserrors.ReferenceError.
func (d *Document) Resolve(ref string) (NamedSchema, error) {
	name, err := RefName(ref)
	if err != nil {
		return NamedSchema{}, err
	}
	s, ok := d.LookupSchema(name)
	if !ok {
		return NamedSchema{}, &oaserrors.ReferenceError{Ref: ref, IsDangling: true}
	}
	return s, nil
}
