package document

import (
	"fmt"
	"slices"

	"github.com/erraggy/oasdraft/oaserrors"
	"github.com/erraggy/oasdraft/ordered"
)

// NewOperation returns an operation for method with a single "200" response
// and nothing else set.
func NewOperation(method Method) Operation {
	return Operation{
		ID:         NewID(),
		Method:     method,
		Tags:       []string{},
		Parameters: []Parameter{},
		Responses: []Response{
			{ID: NewID(), StatusCode: "200", Description: DefaultSuccess},
		},
	}
}

// AddParameter appends an unnamed, optional query parameter of type string.
// It returns the updated operation and the parameter's ID.
func (o Operation) AddParameter() (Operation, string) {
	p := Parameter{ID: NewID(), In: InQuery, Schema: String()}
	o.Parameters = append(slices.Clone(o.Parameters), p)
	return o, p.ID
}

// UpdateParameter replaces the parameter with the given ID by fn's result.
func (o Operation) UpdateParameter(id string, fn func(Parameter) Parameter) (Operation, error) {
	params, err := updateByID(o.Parameters, id, parameterID, func(p Parameter) (Parameter, error) {
		return fn(p), nil
	})
	if err != nil {
		return o, fmt.Errorf("%w: parameter %s", err, id)
	}
	o.Parameters = params
	return o, nil
}

// RemoveParameter removes the parameter with the given ID.
func (o Operation) RemoveParameter(id string) Operation {
	o.Parameters = removeByID(o.Parameters, id, parameterID)
	return o
}

// AddResponse appends a "200" response with an empty description. It returns
// the updated operation and the response's ID.
func (o Operation) AddResponse() (Operation, string) {
	r := Response{ID: NewID(), StatusCode: "200"}
	o.Responses = append(slices.Clone(o.Responses), r)
	return o, r.ID
}

// UpdateResponse replaces the response with the given ID by fn's result.
func (o Operation) UpdateResponse(id string, fn func(Response) Response) (Operation, error) {
	responses, err := updateByID(o.Responses, id, responseID, func(r Response) (Response, error) {
		return fn(r), nil
	})
	if err != nil {
		return o, fmt.Errorf("%w: response %s", err, id)
	}
	o.Responses = responses
	return o, nil
}

// RemoveResponse removes the response with the given ID.
func (o Operation) RemoveResponse(id string) Operation {
	o.Responses = removeByID(o.Responses, id, responseID)
	return o
}

// EnableRequestBody installs a required JSON request body holding an empty
// object schema. An operation that already has a body is returned as is.
func (o Operation) EnableRequestBody() Operation {
	if o.RequestBody == nil {
		o.RequestBody = &RequestBody{
			Required: true,
			Content:  JSONContent(Inline(Schema{Type: TypeObject})),
		}
	}
	return o
}

// DisableRequestBody removes the request body.
func (o Operation) DisableRequestBody() Operation {
	o.RequestBody = nil
	return o
}

// SetRequestBodySchema replaces the JSON schema slot of the request body.
func (o Operation) SetRequestBodySchema(slot SchemaOrRef) (Operation, error) {
	if o.RequestBody == nil {
		return o, &oaserrors.ValidationError{
			Field:   "requestBody",
			Message: "operation has no request body",
		}
	}
	rb := *o.RequestBody
	rb.Content = withMediaType(rb.Content, MediaTypeJSON, slot)
	o.RequestBody = &rb
	return o, nil
}

// JSONSchema returns the slot stored under MediaTypeJSON.
func (rb RequestBody) JSONSchema() (SchemaOrRef, bool) {
	return jsonSchema(rb.Content)
}

// JSONSchema returns the slot stored under MediaTypeJSON.
func (r Response) JSONSchema() (SchemaOrRef, bool) {
	return jsonSchema(r.Content)
}

// WithJSONSchema returns r with its MediaTypeJSON slot set to slot.
func (r Response) WithJSONSchema(slot SchemaOrRef) Response {
	r.Content = withMediaType(r.Content, MediaTypeJSON, slot)
	return r
}

// WithoutContent returns r with no content at all.
func (r Response) WithoutContent() Response {
	r.Content = nil
	return r
}

// JSONContent returns content holding slot under MediaTypeJSON.
func JSONContent(slot SchemaOrRef) *Content {
	return ordered.FromPairs(ordered.P(MediaTypeJSON, MediaType{Schema: slot}))
}

func jsonSchema(c *Content) (SchemaOrRef, bool) {
	mt, ok := c.Get(MediaTypeJSON)
	return mt.Schema, ok
}

func withMediaType(c *Content, mediaType string, slot SchemaOrRef) *Content {
	out := c.Clone()
	if out == nil {
		out = ordered.NewMap[MediaType]()
	}
	out.Set(mediaType, MediaType{Schema: slot})
	return out
}
