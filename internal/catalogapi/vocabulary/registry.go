// Package vocabulary holds the closed sets the CLI understands: resource families, their
// subcommands and actions, argument names and privilege names. Everything here is read-only.
package vocabulary

import (
	"slices"
	"sort"
	"strings"

	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// Field names used when reporting command-level violations.
const (
	FieldCommand    = "command"
	FieldSubcommand = "subcommand"
	FieldAction     = "action"
)

var crud = []types.Subcommand{
	types.SubcommandCreate,
	types.SubcommandDelete,
	types.SubcommandGet,
	types.SubcommandList,
	types.SubcommandUpdate,
}

var grantActions = []types.Action{types.ActionGrant, types.ActionRevoke}

// tree maps each family to its subcommands, and each subcommand to the actions it requires.
// A nil action list means the subcommand takes no action.
var tree = map[types.ResourceFamily]map[types.Subcommand][]types.Action{
	types.FamilyCatalogs: subcommands(crud),
	types.FamilyPrincipals: subcommands(append(slices.Clone(crud),
		types.SubcommandRotateCredentials)),
	types.FamilyPrincipalRoles: subcommands(append(slices.Clone(crud),
		types.SubcommandGrant, types.SubcommandRevoke)),
	types.FamilyCatalogRoles: subcommands(append(slices.Clone(crud),
		types.SubcommandGrant, types.SubcommandRevoke)),
	types.FamilyPrivileges: {
		types.SubcommandList:      nil,
		types.SubcommandCatalog:   grantActions,
		types.SubcommandNamespace: grantActions,
		types.SubcommandTable:     grantActions,
		types.SubcommandView:      grantActions,
	},
	types.FamilyNamespaces: subcommands([]types.Subcommand{
		types.SubcommandCreate,
		types.SubcommandDelete,
		types.SubcommandGet,
		types.SubcommandList,
	}),
	types.FamilyProfiles: subcommands(crud),
}

func subcommands(subs []types.Subcommand) map[types.Subcommand][]types.Action {
	m := make(map[types.Subcommand][]types.Action, len(subs))
	for _, s := range subs {
		m[s] = nil
	}
	return m
}

func IsValidFamily(family types.ResourceFamily) bool {
	_, ok := tree[family]
	return ok
}

func IsValidSubcommand(family types.ResourceFamily, sub types.Subcommand) bool {
	subs, ok := tree[family]
	if !ok {
		return false
	}
	_, ok = subs[sub]
	return ok
}

// IsValidAction reports whether cmd.Action is legal for cmd's family and subcommand.
// An empty action is valid only for subcommands that take none.
func IsValidAction(cmd types.Command) bool {
	if !IsValidSubcommand(cmd.Family, cmd.Subcommand) {
		return false
	}
	actions := tree[cmd.Family][cmd.Subcommand]
	if len(actions) == 0 {
		return cmd.Action == types.ActionNone
	}
	return slices.Contains(actions, cmd.Action)
}

// RequiresAction reports whether the subcommand must be followed by an action.
func RequiresAction(family types.ResourceFamily, sub types.Subcommand) bool {
	return len(tree[family][sub]) > 0
}

func Families() []types.ResourceFamily {
	out := make([]types.ResourceFamily, 0, len(tree))
	for f := range tree {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func Subcommands(family types.ResourceFamily) []types.Subcommand {
	subs := tree[family]
	out := make([]types.Subcommand, 0, len(subs))
	for s := range subs {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func Actions(family types.ResourceFamily, sub types.Subcommand) []types.Action {
	return slices.Clone(tree[family][sub])
}

// Commands enumerates every complete command in a stable order.
func Commands() []types.Command {
	var out []types.Command
	for _, f := range Families() {
		for _, s := range Subcommands(f) {
			actions := Actions(f, s)
			if len(actions) == 0 {
				out = append(out, types.NewCommand(f, s))
				continue
			}
			for _, a := range actions {
				out = append(out, types.NewCommand(f, s, a))
			}
		}
	}
	return out
}

// CheckCommand validates the command triple. Only the first unknown level is reported, since the
// levels below it cannot be judged.
func CheckCommand(cmd types.Command) schemaerr.ValidationErrors {
	if !IsValidFamily(cmd.Family) {
		return schemaerr.ValidationErrors{schemaerr.ErrUnknownValue(FieldCommand, string(cmd.Family), familyNames())}
	}
	if !IsValidSubcommand(cmd.Family, cmd.Subcommand) {
		return schemaerr.ValidationErrors{schemaerr.ErrUnknownValue(FieldSubcommand, string(cmd.Subcommand), subcommandNames(cmd.Family))}
	}
	if IsValidAction(cmd) {
		return nil
	}
	if cmd.Action == types.ActionNone {
		return schemaerr.ValidationErrors{schemaerr.ErrMissingRequiredArgument(FieldAction)}
	}
	if !RequiresAction(cmd.Family, cmd.Subcommand) {
		if slices.Contains(grantActions, cmd.Action) {
			return schemaerr.ValidationErrors{schemaerr.ErrForbiddenArgument(FieldAction, "for "+string(cmd.Family)+" "+string(cmd.Subcommand))}
		}
	}
	return schemaerr.ValidationErrors{schemaerr.ErrUnknownValue(FieldAction, string(cmd.Action), actionNames(cmd.Family, cmd.Subcommand))}
}

func familyNames() []string {
	var out []string
	for _, f := range Families() {
		out = append(out, string(f))
	}
	return out
}

func subcommandNames(f types.ResourceFamily) []string {
	var out []string
	for _, s := range Subcommands(f) {
		out = append(out, string(s))
	}
	return out
}

func actionNames(f types.ResourceFamily, s types.Subcommand) []string {
	var out []string
	for _, a := range tree[f][s] {
		out = append(out, string(a))
	}
	return out
}

var argumentNames = []string{
	types.ArgName, types.ArgType, types.ArgRemoteURL, types.ArgDefaultBaseLocation,
	types.ArgStorageType, types.ArgAllowedLocation, types.ArgRoleArn, types.ArgExternalID,
	types.ArgUserArn, types.ArgRegion, types.ArgTenantID, types.ArgMultiTenantAppName,
	types.ArgConsentURL, types.ArgServiceAccount, types.ArgCatalogRole, types.ArgCatalog,
	types.ArgPrincipal, types.ArgClientID, types.ArgPrincipalRole, types.ArgProperty,
	types.ArgSetProperty, types.ArgRemoveProperty, types.ArgPrivilege, types.ArgNamespace,
	types.ArgTable, types.ArgView, types.ArgCascade, types.ArgClientSecret,
	types.ArgAccessToken, types.ArgHost, types.ArgPort, types.ArgBaseURL, types.ArgParent,
	types.ArgLocation, types.ArgProfile,
}

// IsKnownArgument reports whether name is one of the CLI's argument identifiers.
func IsKnownArgument(name string) bool {
	return slices.Contains(argumentNames, name)
}

// IsSwitchArgument reports whether name is a switch: it is given without a value.
func IsSwitchArgument(name string) bool {
	return name == types.ArgCascade
}

func ArgumentNames() []string {
	out := slices.Clone(argumentNames)
	sort.Strings(out)
	return out
}

// privileges per securable level.
var privileges = map[types.Securable][]string{
	types.SecurableCatalog: {
		"CATALOG_MANAGE_ACCESS", "CATALOG_MANAGE_CONTENT", "CATALOG_MANAGE_METADATA",
		"CATALOG_READ_PROPERTIES", "CATALOG_WRITE_PROPERTIES",
		"NAMESPACE_CREATE", "NAMESPACE_DROP", "NAMESPACE_LIST", "NAMESPACE_READ_PROPERTIES",
		"NAMESPACE_WRITE_PROPERTIES", "NAMESPACE_FULL_METADATA",
		"TABLE_CREATE", "TABLE_DROP", "TABLE_LIST", "TABLE_READ_PROPERTIES", "TABLE_WRITE_PROPERTIES",
		"TABLE_READ_DATA", "TABLE_WRITE_DATA", "TABLE_FULL_METADATA",
		"VIEW_CREATE", "VIEW_DROP", "VIEW_LIST", "VIEW_READ_PROPERTIES", "VIEW_WRITE_PROPERTIES",
		"VIEW_FULL_METADATA",
	},
	types.SecurableNamespace: {
		"NAMESPACE_CREATE", "NAMESPACE_DROP", "NAMESPACE_LIST", "NAMESPACE_READ_PROPERTIES",
		"NAMESPACE_WRITE_PROPERTIES", "NAMESPACE_FULL_METADATA",
		"TABLE_CREATE", "TABLE_DROP", "TABLE_LIST", "TABLE_READ_PROPERTIES", "TABLE_WRITE_PROPERTIES",
		"TABLE_READ_DATA", "TABLE_WRITE_DATA", "TABLE_FULL_METADATA",
		"VIEW_CREATE", "VIEW_DROP", "VIEW_LIST", "VIEW_READ_PROPERTIES", "VIEW_WRITE_PROPERTIES",
		"VIEW_FULL_METADATA",
	},
	types.SecurableTable: {
		"TABLE_DROP", "TABLE_LIST", "TABLE_READ_PROPERTIES", "TABLE_WRITE_PROPERTIES",
		"TABLE_READ_DATA", "TABLE_WRITE_DATA", "TABLE_FULL_METADATA",
	},
	types.SecurableView: {
		"VIEW_DROP", "VIEW_LIST", "VIEW_READ_PROPERTIES", "VIEW_WRITE_PROPERTIES", "VIEW_FULL_METADATA",
	},
}

// Privilege normalizes p and reports whether it can be granted on the given level.
func Privilege(level types.Securable, p string) (string, bool) {
	norm := strings.ToUpper(strings.TrimSpace(p))
	return norm, slices.Contains(privileges[level], norm)
}

func Privileges(level types.Securable) []string {
	return slices.Clone(privileges[level])
}
