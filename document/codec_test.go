package document

import (
	"encoding/json"
	"testing"

	"github.com/erraggy/oasdraft/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	d, pathID := Default().AddPath()
	d, err := d.UpdatePath(pathID, func(p PathItem) PathItem {
		p.Path = "/pets"
		return p
	})
	require.NoError(t, err)
	d, opID, err := d.AddOperation(pathID)
	require.NoError(t, err)
	d, err = d.UpdateOperation(pathID, opID, func(o Operation) (Operation, error) {
		o = o.EnableRequestBody()
		return o.SetRequestBodySchema(Ref("Pet"))
	})
	require.NoError(t, err)
	d, schemaID := d.AddSchema()
	d, err = d.UpdateSchema(schemaID, func(s NamedSchema) (NamedSchema, error) {
		s.Name = "Pet"
		s.Schema = petSchema()
		return s, nil
	})
	require.NoError(t, err)
	return d
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := sampleDocument(t)

	data, err := Encode(d)
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)
	again, err := Encode(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))

	assert.Equal(t, []string{"id", "name", "tags"}, decoded.Schemas[0].Schema.Properties.Keys())
	slot, ok := decoded.Paths[0].Operations[0].RequestBody.JSONSchema()
	require.True(t, ok)
	assert.Equal(t, RefTo("Pet"), slot.Ref.OrElse(""))
}

func TestEncodeKeepsHTMLCharacters(t *testing.T) {
	d := Default().WithInfo(Info{Title: "<Pets> & co", Version: "1"})

	data, err := Encode(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title":"<Pets> & co"`)
	assert.NotContains(t, string(data), `\u003c`)
	assert.NotContains(t, string(data), "\n")

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "<Pets> & co", decoded.Info.Title)
}

func TestDecodeFillsDefaults(t *testing.T) {
	d, err := Decode([]byte(`{"info":{"title":"T","version":"1"}}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultOpenAPIVersion, d.OpenAPI)
	assert.NotNil(t, d.Servers)
	assert.NotNil(t, d.Paths)
	assert.NotNil(t, d.Schemas)
}

func TestDecodeErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "{not json", `{"paths":"x"}`} {
		_, err := Decode([]byte(input))
		require.Error(t, err, input)
		assert.ErrorIs(t, err, oaserrors.ErrParse, input)
	}
}

func TestEmptyPropertiesSurviveRoundTrip(t *testing.T) {
	data, err := json.Marshal(Object())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object","properties":{}}`, string(data))

	var s Schema
	require.NoError(t, json.Unmarshal(data, &s))
	require.NotNil(t, s.Properties)
	assert.Equal(t, 0, s.Properties.Len())
}

func TestSchemaOrRefJSON(t *testing.T) {
	data, err := json.Marshal(Ref("User"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"$ref":"#/components/schemas/User"}`, string(data))

	var slot SchemaOrRef
	require.NoError(t, json.Unmarshal([]byte(`{"$ref":"#/components/schemas/User","type":"string"}`), &slot))
	assert.True(t, slot.IsRef())
	assert.Equal(t, SchemaType(""), slot.Schema.Type)

	require.NoError(t, json.Unmarshal([]byte(`{"type":"string","format":"email"}`), &slot))
	assert.False(t, slot.IsRef())
	assert.Equal(t, "email", slot.Schema.Format.OrElse(""))
}

func TestOptional(t *testing.T) {
	assert.False(t, None[string]().IsSet())
	assert.True(t, Some("").IsSet())
	assert.False(t, NonEmpty("").IsSet())
	assert.Equal(t, "x", NonEmpty("x").OrElse("y"))
	assert.Equal(t, "y", None[string]().OrElse("y"))

	type wrapper struct {
		V Optional[string] `json:"v,omitzero"`
	}
	data, err := json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))

	data, err = json.Marshal(wrapper{V: Some("")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":""}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"v":null}`), &w))
	assert.False(t, w.V.IsSet())
}
