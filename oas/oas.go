// Package oas defines the canonical OpenAPI 3.x tree produced by the
// transform package and consumed by the encoder package.
//
// The types are closed: every value the exporter can emit is one of the
// structs, slices, ordered maps or string/bool scalars declared here. Field
// declaration order is the emission order, and optional fields carry
// omitempty so that an unset value produces no key at all.
//
// Mapping-valued fields use [ordered.Map] so that paths, operations,
// responses, media types and schema properties keep their insertion order in
// both JSON and YAML output.
package oas

import (
	"github.com/erraggy/oasdraft/ordered"
)

// Document is the root of an exported OpenAPI document.
type Document struct {
	OpenAPI    string                  `yaml:"openapi" json:"openapi"`
	Info       *Info                   `yaml:"info" json:"info"`
	Servers    []*Server               `yaml:"servers" json:"servers"`
	Paths      *ordered.Map[*PathItem] `yaml:"paths" json:"paths"`
	Components *Components             `yaml:"components,omitempty" json:"components,omitempty"`
	Tags       []*Tag                  `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	Title          string   `yaml:"title" json:"title"`
	Version        string   `yaml:"version" json:"version"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
}

// Contact information for the exposed API.
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
}

// License information for the exposed API.
type License struct {
	Name       string `yaml:"name" json:"name"`
	URL        string `yaml:"url,omitempty" json:"url,omitempty"`
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`
}

// Server is a target host for the API.
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Tag adds metadata to a tag used by operations.
type Tag struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// PathItem maps lower-case HTTP method names to operations.
type PathItem = ordered.Map[*Operation]

// Operation describes a single API operation on a path.
type Operation struct {
	Summary     string                  `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string                  `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string                  `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Tags        []string                `yaml:"tags,omitempty" json:"tags,omitempty"`
	Parameters  []*Parameter            `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody *RequestBody            `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses   *ordered.Map[*Response] `yaml:"responses" json:"responses"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string  `yaml:"name" json:"name"`
	In          string  `yaml:"in" json:"in"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool    `yaml:"required" json:"required"`
	Schema      *Schema `yaml:"schema" json:"schema"`
}

// RequestBody describes a single request body.
type RequestBody struct {
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool     `yaml:"required" json:"required"`
	Content     *Content `yaml:"content" json:"content"`
}

// Response describes a single response from an operation.
type Response struct {
	Description string   `yaml:"description" json:"description"`
	Content     *Content `yaml:"content,omitempty" json:"content,omitempty"`
}

// Content maps media types to their schemas.
type Content = ordered.Map[*MediaType]

// MediaType carries the schema of one media type.
type MediaType struct {
	Schema *SchemaRef `yaml:"schema" json:"schema"`
}

// Components holds the reusable schema registry.
type Components struct {
	Schemas *ordered.Map[*Schema] `yaml:"schemas" json:"schemas"`
}

// Schema is a lowered schema object. Type is always emitted.
type Schema struct {
	Type        string                `yaml:"type" json:"type"`
	Format      string                `yaml:"format,omitempty" json:"format,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Example     string                `yaml:"example,omitempty" json:"example,omitempty"`
	Enum        []string              `yaml:"enum,omitempty" json:"enum,omitempty"`
	Items       *Schema               `yaml:"items,omitempty" json:"items,omitempty"`
	Properties  *ordered.Map[*Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required    []string              `yaml:"required,omitempty" json:"required,omitempty"`
}
