package errors

import (
	"strings"
)

// Kind names the rule a ValidationError violates.
type Kind string

const (
	KindUnknownVocabulary         Kind = "UnknownVocabulary"
	KindMissingRequiredArgument   Kind = "MissingRequiredArgument"
	KindForbiddenArgumentSupplied Kind = "ForbiddenArgumentSupplied"
	KindMalformedProperty         Kind = "MalformedProperty"
	KindMalformedNamespace        Kind = "MalformedNamespace"
	KindConflictingArguments      Kind = "ConflictingArguments"
	KindInvalidArgumentValue      Kind = "InvalidArgumentValue"
)

// ValidationError is a single violation: the offending argument and the rule it broke.
type ValidationError struct {
	Field  string `json:"field"`
	Kind   Kind   `json:"kind"`
	Value  any    `json:"value,omitempty"`
	ErrStr string `json:"error"`
}

func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.ErrStr
	}
	return ve.Field + ": " + ve.ErrStr
}

type ValidationErrors []ValidationError

func (ves ValidationErrors) Error() string {
	var b strings.Builder
	for i, ve := range ves {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ve.Error())
	}
	return b.String()
}

// OfKind returns the errors of kind k, in order.
func (ves ValidationErrors) OfKind(k Kind) ValidationErrors {
	var out ValidationErrors
	for _, ve := range ves {
		if ve.Kind == k {
			out = append(out, ve)
		}
	}
	return out
}

func InQuotes(s string) string {
	return "'" + s + "'"
}
