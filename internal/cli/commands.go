package cli

import (
	"slices"

	"github.com/mugiliam/hatchcatalogctl/internal/argsource"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/apierrors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/argschema"
	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/vocabulary"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var familySummaries = map[types.ResourceFamily]string{
	types.FamilyCatalogs:       "Manage catalogs",
	types.FamilyPrincipals:     "Manage principals",
	types.FamilyPrincipalRoles: "Manage principal roles",
	types.FamilyCatalogRoles:   "Manage catalog roles",
	types.FamilyPrivileges:     "Manage privileges for a catalog role",
	types.FamilyNamespaces:     "Manage namespaces",
	types.FamilyProfiles:       "Manage connection profiles",
}

// addResourceCommands adds family, subcommand and action commands for every command that has
// an argument schema.
func addResourceCommands(root *cobra.Command, e *env, opts *globalOptions) {
	var reserved []string
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		reserved = append(reserved, f.Name)
	})
	for _, family := range vocabulary.Families() {
		fc := &cobra.Command{
			Use:   string(family),
			Short: familySummaries[family],
		}
		for _, sub := range vocabulary.Subcommands(family) {
			if !vocabulary.RequiresAction(family, sub) {
				if c := leafCommand(e, opts, types.NewCommand(family, sub), reserved); c != nil {
					fc.AddCommand(c)
				}
				continue
			}
			sc := &cobra.Command{
				Use:   string(sub),
				Short: "Grant or revoke " + string(sub) + " privileges",
			}
			for _, action := range vocabulary.Actions(family, sub) {
				if c := leafCommand(e, opts, types.NewCommand(family, sub, action), reserved); c != nil {
					sc.AddCommand(c)
				}
			}
			fc.AddCommand(sc)
		}
		root.AddCommand(fc)
	}
}

func leafCommand(e *env, opts *globalOptions, command types.Command, reserved []string) *cobra.Command {
	schema, ok := argschema.Lookup(command)
	if !ok {
		return nil
	}
	use := string(command.Subcommand)
	if command.Action != types.ActionNone {
		use = string(command.Action)
	}
	positional := positionalArg(command, schema)
	c := &cobra.Command{
		Use:   use,
		Short: schema.Summary,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, pos []string) error {
			args := argsource.FromFlags(cmd.Flags(), schema)
			if len(pos) == 1 {
				if args.Has(positional) {
					ves := schemaerr.ValidationErrors{schemaerr.ErrConflictingArguments(positional, "the positional "+positional)}
					return apierrors.ErrRequestValidation.Err(ves)
				}
				args[positional] = types.StringValue(pos[0])
			}
			return run(cmd.Context(), e, opts, command, args)
		},
	}
	if positional != "" {
		c.Use = use + " [" + positional + "]"
		c.Args = cobra.MaximumNArgs(1)
	}
	argsource.RegisterFlags(c.Flags(), schema, reserved...)
	return c
}

// positionalArg is the argument that may also be given as the single positional argument:
// the namespace for namespace commands, otherwise the name.
func positionalArg(command types.Command, schema *argschema.CommandSchema) string {
	var names []string
	for _, a := range schema.Args() {
		names = append(names, a.Name)
	}
	if command.Family == types.FamilyNamespaces && slices.Contains(names, types.ArgNamespace) {
		return types.ArgNamespace
	}
	if slices.Contains(names, types.ArgName) {
		return types.ArgName
	}
	return ""
}
