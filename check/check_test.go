package check

import (
	"testing"

	"github.com/erraggy/oasdraft/document"
	"github.com/erraggy/oasdraft/ordered"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func op(method document.Method, id string) document.Operation {
	o := document.NewOperation(method)
	o.OperationID = document.NonEmpty(id)
	return o
}

func only(t *testing.T, res *Result, code string) Issue {
	t.Helper()
	got := res.ByCode(code)
	require.Len(t, got, 1, "issues: %v", res.Issues)
	return got[0]
}

func TestDefaultDocumentIsClean(t *testing.T) {
	res := Document(document.Default())
	assert.Empty(t, res.Issues)
	assert.True(t, res.Valid())
}

func TestEmptyServerURL(t *testing.T) {
	d := document.Default().WithServers([]document.Server{{URL: "https://a"}, {URL: " "}})
	res := Document(d)
	issue := only(t, res, CodeEmptyServerURL)
	assert.Equal(t, SeverityInfo, issue.Severity)
	assert.Equal(t, "servers[1].url", issue.Path)
	assert.Equal(t, 1, res.InfoCount)
	assert.True(t, res.Valid())
}

func TestDuplicatePaths(t *testing.T) {
	d := document.Default().WithPaths([]document.PathItem{
		{ID: "a", Path: "/x", Operations: []document.Operation{op(document.MethodGet, "a")}},
		{ID: "b", Path: "/x", Operations: []document.Operation{op(document.MethodPost, "b")}},
	})
	issue := only(t, Document(d), CodeDuplicatePath)
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Equal(t, "paths./x", issue.Path)
	assert.Contains(t, issue.Message, "merged")
}

func TestDuplicateAndInvalidMethods(t *testing.T) {
	d := document.Default().WithPaths([]document.PathItem{{
		Path: "/x",
		Operations: []document.Operation{
			op(document.MethodGet, "one"),
			op(document.MethodGet, "two"),
			op(document.Method("fetch"), "three"),
		},
	}})
	res := Document(d)

	dup := only(t, res, CodeDuplicateMethod)
	assert.Equal(t, "paths./x.get", dup.Path)
	require.NotNil(t, dup.Operation)
	assert.Equal(t, "two", dup.Operation.OperationID)

	bad := only(t, res, CodeInvalidMethod)
	assert.Equal(t, SeverityError, bad.Severity)
	assert.False(t, res.Valid())
}

func TestOperationIDs(t *testing.T) {
	d := document.Default().WithPaths([]document.PathItem{
		{Path: "/pets/{petId}", Operations: []document.Operation{
			func() document.Operation {
				o := op(document.MethodGet, "")
				o.Parameters = []document.Parameter{{Name: "petId", In: document.InPath, Required: true, Schema: document.String()}}
				return o
			}(),
		}},
		{Path: "/a", Operations: []document.Operation{op(document.MethodGet, "same")}},
		{Path: "/b", Operations: []document.Operation{op(document.MethodGet, "same")}},
	})
	res := Document(d)

	missing := only(t, res, CodeMissingOperationID)
	assert.Equal(t, "getPetsByPetId", missing.Suggestion)
	assert.Equal(t, "paths./pets/{petId}.get", missing.Path)

	dup := only(t, res, CodeDuplicateOperationID)
	assert.Equal(t, "paths./b.get", dup.Path)
	assert.Contains(t, dup.Message, "paths./a.get")
}

func TestPathParameters(t *testing.T) {
	o := op(document.MethodGet, "getPet")
	o.Parameters = []document.Parameter{
		{Name: "petId", In: document.InPath, Schema: document.String()},
		{Name: "", In: document.InQuery, Schema: document.String()},
	}
	d := document.Default().WithPaths([]document.PathItem{{Path: "/pets/{petId}/{toyId}", Operations: []document.Operation{o}}})
	res := Document(d)

	optional := only(t, res, CodeOptionalPathParam)
	assert.Equal(t, "paths./pets/{petId}/{toyId}.get.parameters[0]", optional.Path)

	undeclared := only(t, res, CodeUndeclaredPathParam)
	assert.Contains(t, undeclared.Message, "{toyId}")

	unnamed := only(t, res, CodeUnnamedParameter)
	assert.Equal(t, "paths./pets/{petId}/{toyId}.get.parameters[1]", unnamed.Path)
}

func TestInvalidPath(t *testing.T) {
	d := document.Default().WithPaths([]document.PathItem{{Path: "pets"}})
	issue := only(t, Document(d), CodeInvalidPath)
	assert.Equal(t, "paths.pets", issue.Path)
}

func TestResponses(t *testing.T) {
	o := op(document.MethodGet, "list")
	o.Responses = []document.Response{
		{StatusCode: "200", Description: "OK"},
		{StatusCode: "200", Description: ""},
	}
	d := document.Default().WithPaths([]document.PathItem{{Path: "/x", Operations: []document.Operation{o}}})
	res := Document(d)

	assert.Equal(t, "paths./x.get.responses.200", only(t, res, CodeDuplicateStatusCode).Path)
	assert.Equal(t, SeverityInfo, only(t, res, CodeEmptyDescription).Severity)
}

func TestDanglingReferences(t *testing.T) {
	body := op(document.MethodPost, "create").EnableRequestBody()
	body, err := body.SetRequestBodySchema(document.Ref("Missing"))
	require.NoError(t, err)
	body.Responses[0] = body.Responses[0].WithJSONSchema(document.SchemaOrRef{Ref: document.Some("#/definitions/Pet")})

	get := op(document.MethodGet, "get")
	get.Responses[0] = get.Responses[0].WithJSONSchema(document.Ref("Pet"))

	d := document.Default().
		WithPaths([]document.PathItem{{Path: "/pets", Operations: []document.Operation{body, get}}}).
		WithSchemas([]document.NamedSchema{{Name: "Pet", Schema: document.Object()}})
	res := Document(d)

	dangling := res.ByCode(CodeDanglingReference)
	require.Len(t, dangling, 2)
	assert.Equal(t, `paths./pets.post.requestBody.content.application/json.schema`, dangling[0].Path)
	assert.Contains(t, dangling[0].Message, "does not exist")
	assert.Equal(t, `paths./pets.post.responses.200.content.application/json.schema`, dangling[1].Path)
	assert.Equal(t, 2, res.ErrorCount)
	assert.False(t, res.Valid())
}

func TestMissingRequestContent(t *testing.T) {
	o := op(document.MethodPost, "create")
	o.RequestBody = &document.RequestBody{Required: true}
	d := document.Default().WithPaths([]document.PathItem{{Path: "/x", Operations: []document.Operation{o}}})
	assert.Equal(t, "paths./x.post.requestBody", only(t, Document(d), CodeMissingRequestContent).Path)
}

func TestRegistry(t *testing.T) {
	nested := document.Object().
		SetProperty("address", document.Object().SetProperty("street", document.String()).SetRequired("zip", true)).
		SetProperty("tags", document.ArrayOf(document.Schema{Type: document.TypeObject, Required: []string{"label"}})).
		SetRequired("ghost", true)

	d := document.Default().WithSchemas([]document.NamedSchema{
		{Name: "Pet", Schema: nested},
		{Name: "Pet", Schema: document.Object()},
		{Name: "", Schema: document.String()},
	})
	res := Document(d)

	assert.Equal(t, "components.schemas.Pet", only(t, res, CodeDuplicateSchemaName).Path)
	assert.Equal(t, `components.schemas[""]`, only(t, res, CodeEmptySchemaName).Path)

	required := res.ByCode(CodeDanglingRequired)
	require.Len(t, required, 3)
	assert.Equal(t, "components.schemas.Pet.required[0]", required[0].Path)
	assert.Equal(t, "components.schemas.Pet.properties.address.required[0]", required[1].Path)
	assert.Equal(t, "components.schemas.Pet.properties.tags.items.required[0]", required[2].Path)
	assert.True(t, res.Valid())
}

func TestSchemaFormatAndEnum(t *testing.T) {
	s := document.Schema{
		Type: document.TypeObject,
		Properties: ordered.FromPairs(
			ordered.P("n", document.Schema{Type: document.TypeInteger, Format: document.Some("email"), Enum: []string{"1"}}),
			ordered.P("ok", document.Schema{Type: document.TypeString, Format: document.Some("uuid"), Enum: []string{"a"}}),
		),
	}
	res := Document(document.Default().WithSchemas([]document.NamedSchema{{Name: "S", Schema: s}}))

	assert.Equal(t, "components.schemas.S.properties.n", only(t, res, CodeFormatNotForType).Path)
	assert.Equal(t, "components.schemas.S.properties.n", only(t, res, CodeEnumOnNonStringSchema).Path)
}

func TestAtLeast(t *testing.T) {
	d := document.Default().
		WithServers([]document.Server{{URL: ""}}).
		WithSchemas([]document.NamedSchema{{Name: "A", Schema: document.Object()}, {Name: "A", Schema: document.Object()}})
	res := Document(d)

	assert.Len(t, res.AtLeast(SeverityInfo), 2)
	assert.Len(t, res.AtLeast(SeverityWarning), 1)
	assert.Empty(t, res.AtLeast(SeverityError))
	assert.Equal(t, 1, res.WarningCount)
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity("warn")
	require.NoError(t, err)
	assert.Equal(t, SeverityWarning, s)

	_, err = ParseSeverity("fatal")
	assert.Error(t, err)
}

func TestInfoFields(t *testing.T) {
	d := document.Default().WithInfo(document.Info{
		Title:          "T",
		Version:        "1",
		TermsOfService: document.Some("terms.html"),
		Contact: &document.Contact{
			Email: document.Some("not-an-email"),
			URL:   document.Some("https://example.com"),
		},
		License: &document.License{Name: "MIT", URL: document.Some("mit")},
	})
	res := Document(d)

	urls := res.ByCode(CodeInvalidURL)
	require.Len(t, urls, 2)
	assert.Equal(t, "info.termsOfService", urls[0].Path)
	assert.Equal(t, "info.license.url", urls[1].Path)
	assert.Equal(t, "info.contact.email", only(t, res, CodeInvalidEmail).Path)
	assert.True(t, res.Valid())
}

func TestStatusCodesAndMediaTypes(t *testing.T) {
	o := op(document.MethodGet, "get")
	o.Responses = []document.Response{
		{StatusCode: "2XX", Description: "ok"},
		{StatusCode: "default", Description: "error"},
		{StatusCode: "ok", Description: "bad"},
	}
	o.Responses[0].Content = ordered.FromPairs(ordered.P("json", document.MediaType{Schema: document.Inline(document.String())}))
	d := document.Default().WithPaths([]document.PathItem{{Path: "/x", Operations: []document.Operation{o}}})
	res := Document(d)

	assert.Equal(t, "paths./x.get.responses.ok", only(t, res, CodeInvalidStatusCode).Path)
	assert.Equal(t, "paths./x.get.responses.2XX.content.json", only(t, res, CodeInvalidMediaType).Path)
}
