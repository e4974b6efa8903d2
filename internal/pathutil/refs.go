package pathutil

import "strings"

// RefPrefixSchemas is the JSON pointer prefix of component schemas.
const RefPrefixSchemas = "#/components/schemas/"

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// SchemaName returns the schema name of a "#/components/schemas/{name}"
// reference. ok is false for any other reference, including an empty name.
func SchemaName(ref string) (name string, ok bool) {
	name, ok = strings.CutPrefix(ref, RefPrefixSchemas)
	return name, ok && name != ""
}
