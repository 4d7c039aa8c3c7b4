package schemavalidator

import (
	"reflect"
	"strings"
)

// GetJSONTag returns the JSON name of a field, or the Go name when it has none.
func GetJSONTag(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return field.Name
	}
	return strings.Split(jsonTag, ",")[0]
}

// GetArgName resolves a validator struct namespace such as "Request.Catalog.Name" against
// structType and returns the "arg" tag of the final field. Without one it falls back to the
// dotted JSON path.
func GetArgName(structType reflect.Type, structNamespace string) string {
	parts := strings.Split(structNamespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	t := structType
	var jsonPath []string
	var last reflect.StructField
	for _, p := range parts {
		for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return strings.Join(jsonPath, ".")
		}
		if i := strings.IndexByte(p, '['); i >= 0 {
			p = p[:i]
		}
		f, ok := t.FieldByName(p)
		if !ok {
			return strings.Join(jsonPath, ".")
		}
		jsonPath = append(jsonPath, GetJSONTag(f))
		last = f
		t = f.Type
	}
	if arg := last.Tag.Get("arg"); arg != "" {
		return arg
	}
	return strings.Join(jsonPath, ".")
}
