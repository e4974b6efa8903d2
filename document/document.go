// Package document defines the editor-side model of an API description.
//
// A [Document] is what the form editor builds up: info, servers, a list of
// path items with their operations, a flat registry of named schemas and a
// list of tags. It differs from the exported OpenAPI shape in a few ways that
// make editing easier:
//
//   - paths, operations, parameters, responses and named schemas carry an
//     opaque ID that stays stable while their other fields change
//   - paths and responses are ordered lists rather than mappings, so two
//     entries may share a path string or status code while being edited
//   - optional scalars are [Optional] values rather than empty strings
//
// Documents are values. Every editing method returns a new *Document and
// leaves its receiver untouched; unchanged subtrees are shared between the
// old and the new value, so nothing reachable from a Document may be
// modified in place.
//
// Use the transform package to lower a Document into the canonical OpenAPI
// tree, and [Decode]/[Encode] to read and write the persisted JSON form.
package document

import (
	"slices"

	"github.com/erraggy/oasdraft/ordered"
)

// DefaultOpenAPIVersion is the OpenAPI version of new documents.
const DefaultOpenAPIVersion = "3.1.0"

// Document is the complete API description being edited.
type Document struct {
	OpenAPI string        `json:"openapi"`
	Info    Info          `json:"info"`
	Servers []Server      `json:"servers"`
	Paths   []PathItem    `json:"paths"`
	Schemas []NamedSchema `json:"schemas"`
	Tags    []Tag         `json:"tags,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	Title          string           `json:"title"`
	Version        string           `json:"version"`
	Description    Optional[string] `json:"description,omitzero"`
	TermsOfService Optional[string] `json:"termsOfService,omitzero"`
	Summary        Optional[string] `json:"summary,omitzero"`
	Contact        *Contact         `json:"contact,omitempty"`
	License        *License         `json:"license,omitempty"`
}

// Contact information for the exposed API.
type Contact struct {
	Name  Optional[string] `json:"name,omitzero"`
	URL   Optional[string] `json:"url,omitzero"`
	Email Optional[string] `json:"email,omitzero"`
}

// License information for the exposed API. Name is required when a license
// is present.
type License struct {
	Name       string           `json:"name"`
	URL        Optional[string] `json:"url,omitzero"`
	Identifier Optional[string] `json:"identifier,omitzero"`
}

// Server is a target host. Servers with an empty URL are kept while editing
// and dropped on export.
type Server struct {
	URL         string           `json:"url"`
	Description Optional[string] `json:"description,omitzero"`
}

// Tag adds metadata to a tag name used by operations.
type Tag struct {
	Name        string           `json:"name"`
	Description Optional[string] `json:"description,omitzero"`
}

// PathItem is one endpoint path and its operations.
type PathItem struct {
	ID         string      `json:"id"`
	Path       string      `json:"path"`
	Operations []Operation `json:"operations"`
}

// Method is an HTTP method of an operation.
type Method string

// HTTP methods an operation may use.
const (
	MethodGet     Method = "get"
	MethodPost    Method = "post"
	MethodPut     Method = "put"
	MethodPatch   Method = "patch"
	MethodDelete  Method = "delete"
	MethodOptions Method = "options"
	MethodHead    Method = "head"
)

// Methods lists every valid Method.
var Methods = []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodOptions, MethodHead}

// EditorMethods lists the methods offered when adding an operation, in the
// order they are tried.
var EditorMethods = []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}

// Valid reports whether m is one of Methods.
func (m Method) Valid() bool {
	return slices.Contains(Methods, m)
}

// Operation is a single API operation on a path.
type Operation struct {
	ID          string           `json:"id"`
	Method      Method           `json:"method"`
	Summary     Optional[string] `json:"summary,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
	OperationID Optional[string] `json:"operationId,omitzero"`
	Tags        []string         `json:"tags,omitempty"`
	Parameters  []Parameter      `json:"parameters,omitempty"`
	RequestBody *RequestBody     `json:"requestBody,omitempty"`
	Responses   []Response       `json:"responses"`
}

// ParameterLocation is where a parameter is carried.
type ParameterLocation string

// Parameter locations.
const (
	InQuery  ParameterLocation = "query"
	InHeader ParameterLocation = "header"
	InPath   ParameterLocation = "path"
	InCookie ParameterLocation = "cookie"
)

// Parameter is a single operation parameter. Its schema is always inline.
type Parameter struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	In          ParameterLocation `json:"in"`
	Description Optional[string]  `json:"description,omitzero"`
	Required    bool              `json:"required"`
	Schema      Schema            `json:"schema"`
}

// MediaTypeJSON is the only media type the editor populates.
const MediaTypeJSON = "application/json"

// MediaType holds the schema slot of one media type.
type MediaType struct {
	Schema SchemaOrRef `json:"schema"`
}

// Content maps media types to their schema slots.
type Content = ordered.Map[MediaType]

// RequestBody describes an operation's request payload.
type RequestBody struct {
	Description Optional[string] `json:"description,omitzero"`
	Required    bool             `json:"required"`
	Content     *Content         `json:"content"`
}

// Response is one entry of an operation's response list.
type Response struct {
	ID          string   `json:"id"`
	StatusCode  string   `json:"statusCode"`
	Description string   `json:"description"`
	Content     *Content `json:"content,omitempty"`
}

// CommonStatusCodes are the status codes offered by the editor. Any other
// string is accepted.
var CommonStatusCodes = []string{"200", "201", "204", "400", "401", "403", "404", "500"}

// NamedSchema is an entry of the reusable schema registry.
type NamedSchema struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Schema Schema `json:"schema"`
}

// Default returns a new document with the fixed defaults used for a fresh
// editor session.
func Default() *Document {
	return &Document{
		OpenAPI: DefaultOpenAPIVersion,
		Info: Info{
			Title:       "My API",
			Version:     "1.0.0",
			Description: Some("API description"),
		},
		Servers: []Server{
			{URL: "https://api.example.com", Description: Some("Production server")},
		},
		Paths:   []PathItem{},
		Schemas: []NamedSchema{},
		Tags:    []Tag{},
	}
}
