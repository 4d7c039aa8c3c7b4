package argschema

import (
	"strings"

	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// Level is how strongly a command wants an argument.
type Level int

const (
	Optional Level = iota
	Required
	ConditionallyRequired
	Forbidden
)

func (l Level) String() string {
	switch l {
	case Optional:
		return "optional"
	case Required:
		return "required"
	case ConditionallyRequired:
		return "conditionally required"
	case Forbidden:
		return "forbidden"
	}
	return "unknown"
}

// demands reports whether the level can make the argument mandatory.
func (l Level) demands() bool {
	return l == Required || l == ConditionallyRequired
}

// Condition is the predicate of a ConditionallyRequired argument.
type Condition struct {
	Description string
	Holds       func(types.ArgumentSet) bool
}

// ArgEquals holds when name is supplied with value, compared case-insensitively.
func ArgEquals(name, value string) Condition {
	return Condition{
		Description: name + " is " + value,
		Holds: func(as types.ArgumentSet) bool {
			v, ok := as.Get(name)
			return ok && strings.EqualFold(v.String(), value)
		},
	}
}

// ArgPresent holds when name is supplied.
func ArgPresent(name string) Condition {
	return Condition{
		Description: name + " is given",
		Holds: func(as types.ArgumentSet) bool {
			return as.Has(name)
		},
	}
}

// ArgSpec describes one admissible argument of a command.
type ArgSpec struct {
	Name   string
	Level  Level
	When   *Condition
	List   bool
	Switch bool
	// Values is the closed set of accepted values, matched case-insensitively.
	Values []string
	// Format is a validator tag applied to every supplied value.
	Format     string
	FormatHint string
	Default    string
	Reason     string
	Hint       string
}

type ArgOption func(*ArgSpec)

func newSpec(name string, level Level, opts []ArgOption) ArgSpec {
	s := ArgSpec{Name: name, Level: level}
	for _, o := range opts {
		o(&s)
	}
	return s
}

func Require(name string, opts ...ArgOption) ArgSpec {
	return newSpec(name, Required, opts)
}

func Allow(name string, opts ...ArgOption) ArgSpec {
	return newSpec(name, Optional, opts)
}

func RequireWhen(name string, c Condition, opts ...ArgOption) ArgSpec {
	s := newSpec(name, ConditionallyRequired, opts)
	s.When = &c
	return s
}

func Forbid(name string, reason string) ArgSpec {
	return ArgSpec{Name: name, Level: Forbidden, Reason: reason}
}

// ForbidAll forbids every name for the same reason.
func ForbidAll(reason string, names ...string) []ArgSpec {
	out := make([]ArgSpec, 0, len(names))
	for _, n := range names {
		out = append(out, Forbid(n, reason))
	}
	return out
}

func List() ArgOption {
	return func(s *ArgSpec) { s.List = true }
}

func Switch() ArgOption {
	return func(s *ArgSpec) { s.Switch = true }
}

func OneOf(values ...string) ArgOption {
	return func(s *ArgSpec) { s.Values = values }
}

func Format(tag, hint string) ArgOption {
	return func(s *ArgSpec) {
		s.Format = tag
		s.FormatHint = hint
	}
}

func Default(v string) ArgOption {
	return func(s *ArgSpec) { s.Default = v }
}

func Hint(h string) ArgOption {
	return func(s *ArgSpec) { s.Hint = h }
}

func NotBlank() ArgOption {
	return Format("notBlankValidator", "a non-blank value")
}

func URL() ArgOption {
	return Format("url", "a URL")
}

func URI() ArgOption {
	return Format("uri", "a URI")
}

func ARN() ArgOption {
	return Format("arnValidator", "an AWS IAM ARN")
}

func Email() ArgOption {
	return Format("email", "an e-mail address")
}

func Host() ArgOption {
	return Format("hostname_rfc1123|ip", "a hostname or IP address")
}

func Port() ArgOption {
	return Format("portValidator", "a port between 1 and 65535")
}
