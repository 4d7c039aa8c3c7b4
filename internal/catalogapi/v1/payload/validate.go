// Package payload holds what the v1 request builders share: struct validation of request bodies,
// namespace handling and property merging.
package payload

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/schemavalidator"
	_ "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/customvalidators" // Register custom validators
)

// ValidateStruct validates a request body against its validate tags. Violations are reported
// against the argument named by each field's "arg" tag.
func ValidateStruct(s any) schemaerr.ValidationErrors {
	var ves schemaerr.ValidationErrors
	err := schemavalidator.V().Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return append(ves, schemaerr.ErrInvalidArgumentValue("", fmt.Sprint(s), "a valid request"))
	}

	typ := reflect.TypeOf(s)
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	for _, e := range ve {
		field := schemavalidator.GetArgName(typ, e.StructNamespace())
		switch e.Tag() {
		case "required":
			ves = append(ves, schemaerr.ErrMissingRequiredArgument(field))
		case "namespaceValidator":
			segs, _ := e.Value().([]string)
			ves = append(ves, schemaerr.ErrMalformedNamespace(field, strings.Join(segs, ".")))
		case "storageTypeValidator", "catalogTypeValidator", "principalTypeValidator", "grantTypeValidator":
			ves = append(ves, schemaerr.ErrUnknownVocabulary(field, fmt.Sprint(e.Value())))
		case "propertyKeysValidator":
			ves = append(ves, schemaerr.ErrMalformedProperty(field, "="))
		default:
			ves = append(ves, schemaerr.ErrInvalidArgumentValue(field, fmt.Sprint(e.Value()), e.Tag()))
		}
	}
	return ves
}
