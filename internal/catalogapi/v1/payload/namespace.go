package payload

import (
	"strings"

	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/schemavalidator"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// UnitSeparator joins namespace levels in catalog API paths.
const UnitSeparator = "\x1f"

// ParseNamespace splits a period-delimited namespace into its levels. Empty levels, from a
// leading, trailing or doubled period, are reported against field.
func ParseNamespace(field, ns string) ([]string, schemaerr.ValidationErrors) {
	if !schemavalidator.ValidateNamespace(ns) {
		return nil, schemaerr.ValidationErrors{schemaerr.ErrMalformedNamespace(field, ns)}
	}
	return strings.Split(ns, "."), nil
}

// FormatNamespace is the inverse of ParseNamespace.
func FormatNamespace(levels []string) string {
	return strings.Join(levels, ".")
}

// JoinNamespace renders levels as a single path segment.
func JoinNamespace(levels []string) string {
	return strings.Join(levels, UnitSeparator)
}

// NamespaceArg parses the namespace argument name. An absent argument yields no levels and no
// violation; the argument schema reports it when it is required.
func NamespaceArg(args types.ArgumentSet, name string) ([]string, schemaerr.ValidationErrors) {
	v, ok := args.Get(name)
	if !ok {
		return nil, nil
	}
	return ParseNamespace(name, v.String())
}
