package document

import (
	"testing"

	"github.com/erraggy/oasdraft/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petSchema() Schema {
	s := Object()
	s = s.SetProperty("id", Schema{Type: TypeInteger})
	s = s.SetProperty("name", String())
	s = s.SetProperty("tags", ArrayOf(Object().SetProperty("label", String())))
	return s.SetRequired("id", true).SetRequired("name", true)
}

func TestAddPropertyNaming(t *testing.T) {
	s := Object()
	s, first := s.AddProperty()
	s, second := s.AddProperty()
	assert.Equal(t, "property1", first)
	assert.Equal(t, "property2", second)
	assert.Equal(t, []string{"property1", "property2"}, s.Properties.Keys())

	s = s.RemoveProperty("property1")
	s, third := s.AddProperty()
	assert.Equal(t, "property3", third, "name must not collide with property2")

	var bare Schema
	bare, name := bare.AddProperty()
	assert.Equal(t, "property1", name)
	assert.Equal(t, 1, bare.Properties.Len())
}

func TestRenameProperty(t *testing.T) {
	s := petSchema()

	renamed := s.RenameProperty("id", "petId")
	assert.Equal(t, []string{"name", "tags", "petId"}, renamed.Properties.Keys())
	assert.Equal(t, []string{"name", "petId"}, renamed.Required)

	assert.Equal(t, []string{"id", "name", "tags"}, s.Properties.Keys(), "receiver must not change")
	assert.Equal(t, []string{"id", "name"}, s.Required)

	t.Run("unknown name", func(t *testing.T) {
		assert.Equal(t, s, s.RenameProperty("nope", "other"))
	})

	t.Run("onto existing", func(t *testing.T) {
		got := s.RenameProperty("tags", "name")
		assert.Equal(t, []string{"id", "name"}, got.Properties.Keys())
		name, _ := got.Properties.Get("name")
		assert.Equal(t, TypeArray, name.Type)
	})

	t.Run("optional property", func(t *testing.T) {
		got := s.RenameProperty("tags", "labels")
		assert.Equal(t, []string{"id", "name"}, got.Required)
	})
}

func TestRemoveProperty(t *testing.T) {
	s := petSchema()

	got := s.RemoveProperty("id")
	assert.Equal(t, []string{"name", "tags"}, got.Properties.Keys())
	assert.Equal(t, []string{"name"}, got.Required)

	got = got.RemoveProperty("name").RemoveProperty("tags")
	assert.Nil(t, got.Properties)
	assert.Nil(t, got.Required)

	assert.Equal(t, 3, s.Properties.Len())
}

func TestSetRequired(t *testing.T) {
	s := Object().SetProperty("a", String())

	s = s.SetRequired("a", true).SetRequired("a", true)
	assert.Equal(t, []string{"a"}, s.Required)

	s = s.SetRequired("a", false)
	assert.Nil(t, s.Required)
}

func TestWithType(t *testing.T) {
	tests := []struct {
		name      string
		from      Schema
		to        SchemaType
		wantProps bool
		wantItems bool
	}{
		{"string to object", String(), TypeObject, true, false},
		{"string to array", String(), TypeArray, false, true},
		{"object to string", petSchema(), TypeString, false, false},
		{"array to object", ArrayOf(String()), TypeObject, true, false},
		{"object to object", petSchema(), TypeObject, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.WithType(tt.to)
			assert.Equal(t, tt.to, got.Type)
			assert.Equal(t, tt.wantProps, got.Properties != nil)
			assert.Equal(t, tt.wantItems, got.Items != nil)
			if !tt.wantProps {
				assert.Nil(t, got.Required)
			}
		})
	}

	t.Run("array items default to string", func(t *testing.T) {
		got := String().WithType(TypeArray)
		assert.Equal(t, TypeString, got.Items.Type)
	})

	t.Run("object keeps existing properties", func(t *testing.T) {
		got := petSchema().WithType(TypeObject)
		assert.Equal(t, 3, got.Properties.Len())
	})

	t.Run("items type", func(t *testing.T) {
		got := ArrayOf(String()).WithItemsType(TypeObject)
		require.NotNil(t, got.Items)
		assert.Equal(t, TypeObject, got.Items.Type)
		assert.NotNil(t, got.Items.Properties)
	})
}

func TestSchemaPath(t *testing.T) {
	s := petSchema()
	path := SchemaPath{PropertyStep("tags"), ItemsStep(), PropertyStep("label")}

	assert.Equal(t, "properties.tags.items.properties.label", path.String())
	assert.Equal(t, `properties["a.b"]`, SchemaPath{PropertyStep("a.b")}.String())

	got, err := s.At(path)
	require.NoError(t, err)
	assert.Equal(t, TypeString, got.Type)

	root, err := s.At(nil)
	require.NoError(t, err)
	assert.Equal(t, s, root)

	_, err = s.At(SchemaPath{PropertyStep("name"), ItemsStep()})
	assert.ErrorIs(t, err, oaserrors.ErrValidation)
}

func TestSchemaEditCopiesPath(t *testing.T) {
	s := petSchema()
	path := SchemaPath{PropertyStep("tags"), ItemsStep()}

	edited, err := s.Edit(path, func(items Schema) Schema {
		items, _ = items.AddProperty()
		return items.SetRequired("label", true)
	})
	require.NoError(t, err)

	items, err := edited.At(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"label", "property2"}, items.Properties.Keys())
	assert.Equal(t, []string{"label"}, items.Required)

	before, err := s.At(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"label"}, before.Properties.Keys())
	assert.Nil(t, before.Required)

	_, err = s.Edit(SchemaPath{PropertyStep("missing")}, func(s Schema) Schema { return s })
	assert.Error(t, err)

	replaced, err := s.ReplaceAt(SchemaPath{PropertyStep("id")}, String())
	require.NoError(t, err)
	id, _ := replaced.Properties.Get("id")
	assert.Equal(t, TypeString, id.Type)
}

func TestSchemaClone(t *testing.T) {
	s := petSchema()
	c := s.Clone()
	c.Properties.Set("extra", String())
	c.Required[0] = "changed"

	assert.False(t, s.Properties.Has("extra"))
	assert.Equal(t, "id", s.Required[0])
}

func TestParseEnum(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseEnum(" a, b ,,c ,"))
	assert.Nil(t, ParseEnum(""))
	assert.Nil(t, ParseEnum(" , ,"))
}

func TestFormatsFor(t *testing.T) {
	assert.Contains(t, FormatsFor(TypeString), "email")
	assert.Contains(t, FormatsFor(TypeInteger), "int64")
	assert.Nil(t, FormatsFor(TypeBoolean))
}
