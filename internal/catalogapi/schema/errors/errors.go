package errors

import "strings"

func ErrUnknownVocabulary(attr string, value ...string) ValidationError {
	var errStr string
	if len(value) == 0 {
		errStr = "unrecognized value"
	} else {
		errStr = "unrecognized value " + InQuotes(value[0])
	}
	return ValidationError{
		Field:  attr,
		Kind:   KindUnknownVocabulary,
		Value:  anyOf(value),
		ErrStr: errStr,
	}
}

// ErrUnknownValue reports an enum value outside its closed set and lists the allowed values.
func ErrUnknownValue(attr, value string, allowed []string) ValidationError {
	return ValidationError{
		Field:  attr,
		Kind:   KindUnknownVocabulary,
		Value:  value,
		ErrStr: "unrecognized value " + InQuotes(value) + "; allowed values: [" + strings.Join(allowed, ", ") + "]",
	}
}

func ErrUnknownArgument(attr string) ValidationError {
	return ValidationError{
		Field:  attr,
		Kind:   KindUnknownVocabulary,
		ErrStr: "unknown argument",
	}
}

func ErrMissingRequiredArgument(attr string, condition ...string) ValidationError {
	errStr := "missing required argument"
	if len(condition) > 0 && condition[0] != "" {
		errStr += " (required when " + condition[0] + ")"
	}
	return ValidationError{
		Field:  attr,
		Kind:   KindMissingRequiredArgument,
		ErrStr: errStr,
	}
}

func ErrForbiddenArgument(attr string, reason ...string) ValidationError {
	errStr := "argument is not allowed"
	if len(reason) > 0 && reason[0] != "" {
		errStr += " " + reason[0]
	}
	return ValidationError{
		Field:  attr,
		Kind:   KindForbiddenArgumentSupplied,
		ErrStr: errStr,
	}
}

func ErrMalformedProperty(attr, token string) ValidationError {
	return ValidationError{
		Field:  attr,
		Kind:   KindMalformedProperty,
		Value:  token,
		ErrStr: "malformed property " + InQuotes(token) + "; expected key=value",
	}
}

func ErrMalformedNamespace(attr, value string) ValidationError {
	return ValidationError{
		Field:  attr,
		Kind:   KindMalformedNamespace,
		Value:  value,
		ErrStr: "malformed namespace " + InQuotes(value) + "; segments must be non-empty and separated by a single '.'",
	}
}

func ErrConflictingArguments(attr string, others ...string) ValidationError {
	return ValidationError{
		Field:  attr,
		Kind:   KindConflictingArguments,
		Value:  others,
		ErrStr: "cannot be combined with " + strings.Join(others, ", "),
	}
}

func ErrInvalidArgumentValue(attr string, value string, expected string) ValidationError {
	return ValidationError{
		Field:  attr,
		Kind:   KindInvalidArgumentValue,
		Value:  value,
		ErrStr: "invalid value " + InQuotes(value) + "; expected " + expected,
	}
}

func ErrExpectedSingleValue(attr string) ValidationError {
	return ValidationError{
		Field:  attr,
		Kind:   KindInvalidArgumentValue,
		ErrStr: "argument takes a single value",
	}
}

func anyOf(value []string) any {
	if len(value) == 0 {
		return nil
	}
	return value[0]
}
