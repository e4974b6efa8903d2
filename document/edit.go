package document

import (
	"errors"
	"fmt"
	"slices"

	"github.com/erraggy/oasdraft/oaserrors"
)

// ErrUnknownID is returned when an editing method is given an ID that does
// not address any entity.
var ErrUnknownID = errors.New("document: unknown id")

// Defaults for entities created by the editor.
const (
	NewPathString  = "/new-endpoint"
	NewSchemaName  = "NewSchema"
	DefaultSuccess = "Successful response"
)

func (d *Document) shallow() *Document {
	c := *d
	return &c
}

// WithInfo returns a copy of d with info replaced.
func (d *Document) WithInfo(info Info) *Document {
	c := d.shallow()
	c.Info = info
	return c
}

// WithOpenAPI returns a copy of d with the OpenAPI version replaced.
func (d *Document) WithOpenAPI(version string) *Document {
	c := d.shallow()
	c.OpenAPI = version
	return c
}

// WithServers returns a copy of d with the server list replaced.
func (d *Document) WithServers(servers []Server) *Document {
	c := d.shallow()
	c.Servers = slices.Clone(servers)
	return c
}

// WithTags returns a copy of d with the tag list replaced.
func (d *Document) WithTags(tags []Tag) *Document {
	c := d.shallow()
	c.Tags = slices.Clone(tags)
	return c
}

// WithPaths returns a copy of d with the path list replaced.
func (d *Document) WithPaths(paths []PathItem) *Document {
	c := d.shallow()
	c.Paths = slices.Clone(paths)
	return c
}

// WithSchemas returns a copy of d with the schema registry replaced.
func (d *Document) WithSchemas(schemas []NamedSchema) *Document {
	c := d.shallow()
	c.Schemas = slices.Clone(schemas)
	return c
}

// AddPath appends a new path item with the placeholder path string and no
// operations. It returns the new document and the new path item's ID.
func (d *Document) AddPath() (*Document, string) {
	p := PathItem{ID: NewID(), Path: NewPathString, Operations: []Operation{}}
	return d.WithPaths(append(slices.Clone(d.Paths), p)), p.ID
}

// UpdatePath replaces the path item with the given ID by fn's result.
func (d *Document) UpdatePath(id string, fn func(PathItem) PathItem) (*Document, error) {
	paths, err := updateByID(d.Paths, id, pathID, func(p PathItem) (PathItem, error) {
		return fn(p), nil
	})
	if err != nil {
		return d, fmt.Errorf("%w: path %s", err, id)
	}
	c := d.shallow()
	c.Paths = paths
	return c, nil
}

// RemovePath removes the path item with the given ID. Unknown IDs leave the
// document unchanged.
func (d *Document) RemovePath(id string) *Document {
	c := d.shallow()
	c.Paths = removeByID(d.Paths, id, pathID)
	return c
}

// Path returns the path item with the given ID.
func (d *Document) Path(id string) (PathItem, bool) {
	i := slices.IndexFunc(d.Paths, func(p PathItem) bool { return p.ID == id })
	if i < 0 {
		return PathItem{}, false
	}
	return d.Paths[i], true
}

// AddOperation adds an operation to the path item with the given ID using
// the first method from EditorMethods the item does not use yet. It fails
// with a *oaserrors.ValidationError when every editor method is taken.
func (d *Document) AddOperation(pathItemID string) (*Document, string, error) {
	p, ok := d.Path(pathItemID)
	if !ok {
		return d, "", fmt.Errorf("%w: path %s", ErrUnknownID, pathItemID)
	}
	method, ok := p.NextMethod()
	if !ok {
		return d, "", &oaserrors.ValidationError{
			Path:    "paths." + p.Path,
			Field:   "operations",
			Message: "every method already has an operation",
		}
	}
	op := NewOperation(method)
	c, err := d.UpdatePath(pathItemID, func(p PathItem) PathItem {
		p.Operations = append(slices.Clone(p.Operations), op)
		return p
	})
	return c, op.ID, err
}

// UpdateOperation replaces an operation of a path item by fn's result. An
// error from fn is returned unchanged and leaves the document as it was.
func (d *Document) UpdateOperation(pathItemID, operationID string, fn func(Operation) (Operation, error)) (*Document, error) {
	p, ok := d.Path(pathItemID)
	if !ok {
		return d, fmt.Errorf("%w: path %s", ErrUnknownID, pathItemID)
	}
	ops, err := updateByID(p.Operations, operationID, operationIDOf, fn)
	if err != nil {
		if errors.Is(err, ErrUnknownID) {
			return d, fmt.Errorf("%w: operation %s", err, operationID)
		}
		return d, err
	}
	return d.UpdatePath(pathItemID, func(p PathItem) PathItem {
		p.Operations = ops
		return p
	})
}

// RemoveOperation removes an operation from a path item.
func (d *Document) RemoveOperation(pathItemID, operationID string) (*Document, error) {
	return d.UpdatePath(pathItemID, func(p PathItem) PathItem {
		p.Operations = removeByID(p.Operations, operationID, operationIDOf)
		return p
	})
}

// AddSchema appends a registry entry named NewSchemaName holding an empty
// object schema. It returns the new document and the entry's ID.
func (d *Document) AddSchema() (*Document, string) {
	s := NamedSchema{ID: NewID(), Name: NewSchemaName, Schema: Object()}
	return d.WithSchemas(append(slices.Clone(d.Schemas), s)), s.ID
}

// UpdateSchema replaces the registry entry with the given ID by fn's result.
func (d *Document) UpdateSchema(id string, fn func(NamedSchema) (NamedSchema, error)) (*Document, error) {
	schemas, err := updateByID(d.Schemas, id, namedSchemaID, fn)
	if err != nil {
		if errors.Is(err, ErrUnknownID) {
			return d, fmt.Errorf("%w: schema %s", err, id)
		}
		return d, err
	}
	c := d.shallow()
	c.Schemas = schemas
	return c, nil
}

// RemoveSchema removes the registry entry with the given ID. References to
// it are left in place and reported by the check package.
func (d *Document) RemoveSchema(id string) *Document {
	c := d.shallow()
	c.Schemas = removeByID(d.Schemas, id, namedSchemaID)
	return c
}

// UsedMethods returns the methods of p's operations in order.
func (p PathItem) UsedMethods() []Method {
	methods := make([]Method, 0, len(p.Operations))
	for _, op := range p.Operations {
		methods = append(methods, op.Method)
	}
	return methods
}

// NextMethod returns the first EditorMethods entry p does not use.
func (p PathItem) NextMethod() (Method, bool) {
	used := p.UsedMethods()
	for _, m := range EditorMethods {
		if !slices.Contains(used, m) {
			return m, true
		}
	}
	return "", false
}

func pathID(p PathItem) string { return p.ID }

func operationIDOf(o Operation) string { return o.ID }

func parameterID(p Parameter) string { return p.ID }

func responseID(r Response) string { return r.ID }

func namedSchemaID(s NamedSchema) string { return s.ID }

// updateByID returns a copy of items with the element whose ID is id replaced
// by fn's result.
func updateByID[T any](items []T, id string, idOf func(T) string, fn func(T) (T, error)) ([]T, error) {
	i := slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
	if i < 0 {
		return items, ErrUnknownID
	}
	updated, err := fn(items[i])
	if err != nil {
		return items, err
	}
	out := slices.Clone(items)
	out[i] = updated
	return out, nil
}

// removeByID returns a copy of items without elements whose ID is id.
func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
