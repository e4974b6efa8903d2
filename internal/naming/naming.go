// Package naming derives identifiers from path templates and free text.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func isSeparator(r rune) bool {
	return r == '/' || r == '-' || r == '_' || r == '.' || unicode.IsSpace(r)
}

// ToPascalCase joins the words of s, each starting with an upper-case letter.
// Separators (slash, hyphen, underscore, dot, space) start a new word.
// Example: "user_profile" -> "UserProfile"
func ToPascalCase(s string) string {
	// NoLower keeps "petId" as "PetId". Casers hold state, so one per call.
	title := cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	for _, w := range strings.FieldsFunc(s, isSeparator) {
		b.WriteString(title.String(w))
	}
	return b.String()
}

// ToCamelCase is ToPascalCase with a lower-case first letter.
// Example: "User profile" -> "userProfile"
func ToCamelCase(s string) string {
	p := ToPascalCase(s)
	if p == "" {
		return ""
	}
	r := []rune(p)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// OperationID suggests an operationId for an operation from its method and
// path template. Template parameters become "By" clauses:
//
//	OperationID("get", "/pets/{petId}/toys") // "getPetsToysByPetId"
func OperationID(method, path string) string {
	var words, params []string
	for _, seg := range strings.Split(path, "/") {
		if name, ok := strings.CutPrefix(seg, "{"); ok {
			params = append(params, strings.TrimSuffix(name, "}"))
			continue
		}
		words = append(words, seg)
	}
	id := strings.ToLower(method) + ToPascalCase(strings.Join(words, "/"))
	for i, p := range params {
		if i == 0 {
			id += "By"
		} else {
			id += "And"
		}
		id += ToPascalCase(p)
	}
	return id
}
