// Package argsource turns user input into a command and its argument set. Input comes either
// from command-line flags or from an argument document.
package argsource

import (
	"slices"
	"strings"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/argschema"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/vocabulary"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/spf13/pflag"
)

// FlagName is the command-line spelling of an argument.
func FlagName(arg string) string {
	return strings.ReplaceAll(arg, "_", "-")
}

// ArgName is the argument a flag sets.
func ArgName(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// argAnnotation marks the flags RegisterFlags added, so that FromFlags ignores flags inherited
// from parent commands.
const argAnnotation = "catalogctl_argument"

// RegisterFlags adds a flag for every argument schema names. List arguments may be repeated and
// switches take no value. Every other known argument gets a hidden flag, so supplying one is
// reported as a violation instead of failing flag parsing. Names in reserved are skipped unless
// schema names them; they belong to flags defined elsewhere.
func RegisterFlags(fs *pflag.FlagSet, schema *argschema.CommandSchema, reserved ...string) {
	named := make(map[string]bool)
	for _, a := range schema.Args() {
		named[a.Name] = true
		name := FlagName(a.Name)
		if fs.Lookup(name) != nil {
			continue
		}
		switch {
		case a.Level == argschema.Forbidden:
			hiddenFlag(fs, a.Name, "not allowed "+a.Reason)
		case a.List:
			fs.StringArray(name, nil, usage(a))
		case a.Switch:
			fs.Bool(name, false, usage(a))
		default:
			fs.String(name, "", usage(a))
		}
		_ = fs.SetAnnotation(name, argAnnotation, []string{a.Name})
	}
	for _, arg := range vocabulary.ArgumentNames() {
		name := FlagName(arg)
		if named[arg] || slices.Contains(reserved, name) || fs.Lookup(name) != nil {
			continue
		}
		hiddenFlag(fs, arg, "not accepted by "+schema.Command.String())
		_ = fs.SetAnnotation(name, argAnnotation, []string{arg})
	}
}

// hiddenFlag registers a string flag for arg. Switches also accept being given without a value.
func hiddenFlag(fs *pflag.FlagSet, arg, usage string) {
	name := FlagName(arg)
	fs.String(name, "", usage)
	if vocabulary.IsSwitchArgument(arg) {
		fs.Lookup(name).NoOptDefVal = "true"
	}
	_ = fs.MarkHidden(name)
}

func usage(a argschema.ArgSpec) string {
	if a.Hint != "" {
		return a.Hint
	}
	u := strings.ReplaceAll(a.Name, "_", " ")
	if len(a.Values) > 0 {
		u += ", one of [" + strings.Join(a.Values, ", ") + "]"
	}
	switch a.Level {
	case argschema.Required:
		u += " (required)"
	case argschema.ConditionallyRequired:
		if a.When != nil {
			u += " (required when " + a.When.Description + ")"
		}
	}
	return u
}

// FromFlags collects the arguments whose flags RegisterFlags added and the user set. A switch
// set to false is treated as absent.
func FromFlags(fs *pflag.FlagSet, schema *argschema.CommandSchema) types.ArgumentSet {
	specs := make(map[string]argschema.ArgSpec)
	for _, a := range schema.Args() {
		specs[a.Name] = a
	}
	args := make(types.ArgumentSet)
	fs.Visit(func(f *pflag.Flag) {
		ann, ok := f.Annotations[argAnnotation]
		if !ok || len(ann) == 0 {
			return
		}
		arg := ann[0]
		a, ok := specs[arg]
		switch {
		case !ok || a.Level == argschema.Forbidden:
			if v, err := fs.GetString(f.Name); err == nil {
				args[arg] = types.StringValue(v)
			}
		case a.List:
			if v, err := fs.GetStringArray(f.Name); err == nil {
				args[arg] = types.ListValue(v...)
			}
		case a.Switch:
			if on, err := fs.GetBool(f.Name); err == nil && on {
				args[arg] = types.BoolValue()
			}
		default:
			if v, err := fs.GetString(f.Name); err == nil {
				args[arg] = types.StringValue(v)
			}
		}
	})
	return args
}
