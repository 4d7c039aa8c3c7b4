package schemavalidator

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	v    *validator.Validate
	once sync.Once
)

// V returns the shared validator with the custom validations registered.
func V() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterValidation("arnValidator", arnValidator)
		v.RegisterValidation("notBlankValidator", notBlankValidator)
		v.RegisterValidation("namespaceValidator", namespaceValidator)
		v.RegisterValidation("portValidator", portValidator)
	})
	return v
}

var arnRegex = regexp.MustCompile(`^arn:aws[a-zA-Z-]*:iam::[0-9]{12}:(role|user)/[\w+=,.@/-]+$`)

// arnValidator checks for an AWS IAM role or user ARN.
func arnValidator(fl validator.FieldLevel) bool {
	return arnRegex.MatchString(fl.Field().String())
}

func notBlankValidator(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// portValidator accepts a TCP port given as a string or an integer.
func portValidator(fl validator.FieldLevel) bool {
	var n int64
	switch f := fl.Field(); {
	case f.CanInt():
		n = f.Int()
	default:
		var err error
		n, err = strconv.ParseInt(f.String(), 10, 32)
		if err != nil {
			return false
		}
	}
	return n >= 1 && n <= 65535
}

// namespaceValidator checks a slice of namespace segments: at least one, none empty.
func namespaceValidator(fl validator.FieldLevel) bool {
	segs, ok := fl.Field().Interface().([]string)
	if !ok || len(segs) == 0 {
		return false
	}
	for _, s := range segs {
		if s == "" {
			return false
		}
	}
	return true
}

// ValidateNamespace reports whether ns is a usable period-delimited namespace.
func ValidateNamespace(ns string) bool {
	if ns == "" {
		return false
	}
	for _, s := range strings.Split(ns, ".") {
		if s == "" {
			return false
		}
	}
	return true
}
