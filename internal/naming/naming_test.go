package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"user_profile", "UserProfile"},
		{"api-client", "ApiClient"},
		{"petId", "PetId"},
		{"/pets/toys", "PetsToys"},
		{"list all pets", "ListAllPets"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToPascalCase(tt.in), tt.in)
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "userProfile", ToCamelCase("User profile"))
	assert.Equal(t, "", ToCamelCase("--"))
}

func TestOperationID(t *testing.T) {
	tests := []struct {
		method, path, want string
	}{
		{"get", "/pets", "getPets"},
		{"GET", "/pets/{petId}", "getPetsByPetId"},
		{"delete", "/pets/{petId}/toys/{toy_id}", "deletePetsToysByPetIdAndToyId"},
		{"post", "/", "post"},
		{"put", "/user-profiles", "putUserProfiles"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OperationID(tt.method, tt.path), tt.method+" "+tt.path)
	}
}
