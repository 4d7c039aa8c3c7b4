package argschema

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/schemavalidator"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/vocabulary"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// Overlay replaces argument specs while its discriminant argument has Value.
type Overlay struct {
	Discriminant string
	Value        string
	Args         []ArgSpec
}

// CommandSchema is the argument table of one command.
type CommandSchema struct {
	Command   types.Command
	Summary   string
	args      []ArgSpec
	overlays  []Overlay
	exclusive [][]string
}

type SchemaOption func(*CommandSchema)

func WithOverlay(discriminant, value string, args ...ArgSpec) SchemaOption {
	return func(s *CommandSchema) {
		s.overlays = append(s.overlays, Overlay{Discriminant: discriminant, Value: value, Args: args})
	}
}

// WithExclusive declares that at most one of names may be supplied.
func WithExclusive(names ...string) SchemaOption {
	return func(s *CommandSchema) {
		s.exclusive = append(s.exclusive, names)
	}
}

func WithSummary(summary string) SchemaOption {
	return func(s *CommandSchema) {
		s.Summary = summary
	}
}

// NewCommandSchema builds a schema and checks it for authoring mistakes: duplicate arguments,
// overlays on undeclared discriminants, and arguments that two simultaneously active rules would
// both demand and forbid.
func NewCommandSchema(cmd types.Command, args []ArgSpec, opts ...SchemaOption) (*CommandSchema, error) {
	s := &CommandSchema{Command: cmd, args: args}
	for _, o := range opts {
		o(s)
	}
	if err := s.check(); err != nil {
		return nil, fmt.Errorf("schema for %s: %w", cmd, err)
	}
	return s, nil
}

func (s *CommandSchema) check() error {
	base := make(map[string]ArgSpec, len(s.args))
	for _, a := range s.args {
		if err := checkSpec(a); err != nil {
			return err
		}
		if _, dup := base[a.Name]; dup {
			return fmt.Errorf("argument %s declared twice", a.Name)
		}
		base[a.Name] = a
	}

	seen := make(map[string]bool)
	for _, o := range s.overlays {
		if _, ok := base[o.Discriminant]; !ok {
			return fmt.Errorf("overlay discriminant %s is not an argument", o.Discriminant)
		}
		key := o.Discriminant + "=" + strings.ToLower(o.Value)
		if seen[key] {
			return fmt.Errorf("overlay %s declared twice", key)
		}
		seen[key] = true
		names := make(map[string]bool)
		for _, a := range o.Args {
			if err := checkSpec(a); err != nil {
				return err
			}
			if names[a.Name] {
				return fmt.Errorf("argument %s declared twice in overlay %s", a.Name, key)
			}
			names[a.Name] = true
			if a.Name == o.Discriminant {
				return fmt.Errorf("overlay %s redefines its own discriminant", key)
			}
			// base rules stay active under every overlay
			if b, ok := base[a.Name]; ok && conflicting(b, a) {
				return fmt.Errorf("argument %s is %s in the base rules and %s under %s", a.Name, b.Level, a.Level, key)
			}
		}
	}

	// overlays on different discriminants can be active together
	for i, o1 := range s.overlays {
		for _, o2 := range s.overlays[i+1:] {
			if o1.Discriminant == o2.Discriminant {
				continue
			}
			for _, a1 := range o1.Args {
				for _, a2 := range o2.Args {
					if a1.Name == a2.Name && conflicting(a1, a2) {
						return fmt.Errorf("argument %s is %s under %s=%s and %s under %s=%s",
							a1.Name, a1.Level, o1.Discriminant, o1.Value, a2.Level, o2.Discriminant, o2.Value)
					}
				}
			}
		}
	}

	for _, group := range s.exclusive {
		required := 0
		for _, n := range group {
			if _, ok := s.spec(n); !ok {
				return fmt.Errorf("exclusive argument %s is not declared", n)
			}
			if b, ok := base[n]; ok && b.Level == Required {
				required++
			}
		}
		if required > 1 {
			return fmt.Errorf("exclusive group %v has more than one required argument", group)
		}
	}
	return nil
}

func checkSpec(a ArgSpec) error {
	if a.Name == "" {
		return fmt.Errorf("argument without a name")
	}
	if !vocabulary.IsKnownArgument(a.Name) {
		return fmt.Errorf("argument %s is not in the argument vocabulary", a.Name)
	}
	if a.Level == ConditionallyRequired && (a.When == nil || a.When.Holds == nil) {
		return fmt.Errorf("argument %s is conditionally required without a condition", a.Name)
	}
	if a.List && a.Switch {
		return fmt.Errorf("argument %s cannot be both a list and a switch", a.Name)
	}
	return nil
}

func conflicting(a, b ArgSpec) bool {
	return (a.Level.demands() && b.Level == Forbidden) || (b.Level.demands() && a.Level == Forbidden)
}

// spec finds name in the base rules or any overlay.
func (s *CommandSchema) spec(name string) (ArgSpec, bool) {
	for _, a := range s.args {
		if a.Name == name {
			return a, true
		}
	}
	for _, o := range s.overlays {
		for _, a := range o.Args {
			if a.Name == name {
				return a, true
			}
		}
	}
	return ArgSpec{}, false
}

// Effective returns the argument table that applies to args: the base rules with the overlays of
// every resolved discriminant applied. Arguments that only appear in overlays whose discriminant
// is unresolved are admitted as optional; the conflict check covers them.
func (s *CommandSchema) Effective(args types.ArgumentSet) map[string]ArgSpec {
	eff := make(map[string]ArgSpec)
	for _, o := range s.overlays {
		for _, a := range o.Args {
			if _, ok := eff[a.Name]; !ok {
				eff[a.Name] = ArgSpec{Name: a.Name, Level: Optional, List: a.List, Switch: a.Switch, Format: a.Format, FormatHint: a.FormatHint, Hint: a.Hint}
			}
		}
	}
	for _, a := range s.args {
		eff[a.Name] = a
	}
	for _, o := range s.activeOverlays(args) {
		for _, a := range o.Args {
			eff[a.Name] = a
		}
	}
	return eff
}

func (s *CommandSchema) activeOverlays(args types.ArgumentSet) []Overlay {
	var active []Overlay
	for _, o := range s.overlays {
		v, ok := args.Get(o.Discriminant)
		if ok && !v.IsList() && strings.EqualFold(v.String(), o.Value) {
			active = append(active, o)
		}
	}
	return active
}

// Args returns every argument the schema names, sorted by name, with the most permissive level
// it has anywhere in the schema. An argument is Forbidden only if no rule admits it. Used to
// generate flags.
func (s *CommandSchema) Args() []ArgSpec {
	eff := s.Effective(nil)
	out := make([]ArgSpec, 0, len(eff))
	for _, a := range eff {
		if a.Level == Forbidden {
			if alt, ok := s.admittedSomewhere(a.Name); ok {
				a = alt
			}
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *CommandSchema) admittedSomewhere(name string) (ArgSpec, bool) {
	for _, o := range s.overlays {
		for _, a := range o.Args {
			if a.Name == name && a.Level != Forbidden {
				return a, true
			}
		}
	}
	return ArgSpec{}, false
}

// Validate checks args against the schema and returns every violation found.
func (s *CommandSchema) Validate(args types.ArgumentSet) schemaerr.ValidationErrors {
	var rep schemaerr.Reporter
	eff := s.Effective(args)

	for _, name := range args.Names() {
		if !vocabulary.IsKnownArgument(name) {
			rep.Add(schemaerr.ErrUnknownArgument(name))
			continue
		}
		spec, ok := eff[name]
		if !ok {
			rep.Add(schemaerr.ErrForbiddenArgument(name, "for "+s.Command.String()))
			continue
		}
		if spec.Level == Forbidden {
			rep.Add(schemaerr.ErrForbiddenArgument(name, spec.Reason))
			continue
		}
		rep.Add(validateValue(spec, args[name])...)
	}

	names := make([]string, 0, len(eff))
	for n := range eff {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		spec := eff[n]
		if args.Has(n) {
			continue
		}
		switch spec.Level {
		case Required:
			rep.Add(schemaerr.ErrMissingRequiredArgument(n))
		case ConditionallyRequired:
			if spec.When.Holds(args) {
				rep.Add(schemaerr.ErrMissingRequiredArgument(n, spec.When.Description))
			}
		}
	}

	for _, group := range s.exclusive {
		var supplied []string
		for _, n := range group {
			if args.Has(n) {
				supplied = append(supplied, n)
			}
		}
		if len(supplied) > 1 {
			for _, n := range supplied {
				rep.Add(schemaerr.ErrConflictingArguments(n, without(supplied, n)...))
			}
		}
	}

	rep.Add(s.overlayConflicts(args)...)
	return rep.Report()
}

// overlayConflicts reports arguments owned by different values of a discriminant that is absent
// or unrecognized, such as S3 and Azure credentials given without a storage type.
func (s *CommandSchema) overlayConflicts(args types.ArgumentSet) schemaerr.ValidationErrors {
	var ves schemaerr.ValidationErrors
	for _, d := range s.discriminants() {
		if s.resolved(d, args) {
			continue
		}
		owners := make(map[string][]string) // argument -> overlay values admitting it
		for _, o := range s.overlays {
			if o.Discriminant != d {
				continue
			}
			for _, a := range o.Args {
				if a.Level != Forbidden && args.Has(a.Name) {
					owners[a.Name] = append(owners[a.Name], strings.ToLower(o.Value))
				}
			}
		}
		var supplied []string
		values := make(map[string]bool)
		for n, vs := range owners {
			if s.exclusiveOwner(d, n) {
				supplied = append(supplied, n)
				values[vs[0]] = true
			}
		}
		if len(values) < 2 {
			continue
		}
		sort.Strings(supplied)
		for _, n := range supplied {
			var others []string
			for _, m := range supplied {
				if owners[m][0] != owners[n][0] {
					others = append(others, m)
				}
			}
			ves = append(ves, schemaerr.ErrConflictingArguments(n, others...))
		}
	}
	return ves
}

// exclusiveOwner reports whether exactly one overlay of d admits name.
func (s *CommandSchema) exclusiveOwner(d, name string) bool {
	count := 0
	for _, o := range s.overlays {
		if o.Discriminant != d {
			continue
		}
		for _, a := range o.Args {
			if a.Name == name && a.Level != Forbidden {
				count++
			}
		}
	}
	return count == 1
}

func (s *CommandSchema) discriminants() []string {
	var ds []string
	for _, o := range s.overlays {
		if !slices.Contains(ds, o.Discriminant) {
			ds = append(ds, o.Discriminant)
		}
	}
	return ds
}

func (s *CommandSchema) resolved(d string, args types.ArgumentSet) bool {
	v, ok := args.Get(d)
	if !ok || v.IsList() {
		return false
	}
	for _, o := range s.overlays {
		if o.Discriminant == d && strings.EqualFold(o.Value, v.String()) {
			return true
		}
	}
	return false
}

func validateValue(spec ArgSpec, v types.ArgumentValue) schemaerr.ValidationErrors {
	var ves schemaerr.ValidationErrors
	if v.IsList() && !spec.List {
		return append(ves, schemaerr.ErrExpectedSingleValue(spec.Name))
	}
	if spec.Switch {
		if _, err := strconv.ParseBool(v.String()); err != nil {
			ves = append(ves, schemaerr.ErrInvalidArgumentValue(spec.Name, v.String(), "true or false"))
		}
		return ves
	}
	for _, val := range v.Strings() {
		if len(spec.Values) > 0 && !containsFold(spec.Values, val) {
			ves = append(ves, schemaerr.ErrUnknownValue(spec.Name, val, spec.Values))
			continue
		}
		if spec.Format == "" {
			continue
		}
		if err := schemavalidator.V().Var(val, spec.Format); err != nil {
			ves = append(ves, schemaerr.ErrInvalidArgumentValue(spec.Name, val, spec.FormatHint))
		}
	}
	return ves
}

func containsFold(values []string, v string) bool {
	for _, x := range values {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}

func without(names []string, n string) []string {
	out := make([]string, 0, len(names))
	for _, m := range names {
		if m != n {
			out = append(out, m)
		}
	}
	return out
}
