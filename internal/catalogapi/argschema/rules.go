package argschema

import (
	"slices"
	"strings"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/vocabulary"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

const (
	hintProperty       = "A key/value pair such as: tag=value. Multiple can be provided by specifying this option more than once"
	hintSetProperty    = "A key/value pair such as: tag=value. Merges the specified key/value into an existing properties map by updating the value if the key already exists or creating a new entry if not. Multiple can be provided by specifying this option more than once"
	hintRemoveProperty = "A key to remove from a properties map. If the key already does not exist then no action is taken for the specified key. If properties are also being set in the same update command then the list of removals is applied last. Multiple can be provided by specifying this option more than once"
)

var (
	s3Args    = []string{types.ArgRoleArn, types.ArgExternalID, types.ArgRegion, types.ArgUserArn}
	azureArgs = []string{types.ArgTenantID, types.ArgMultiTenantAppName, types.ArgConsentURL}
	gcsArgs   = []string{types.ArgServiceAccount}
)

func name(hint string) ArgSpec {
	return Require(types.ArgName, NotBlank(), Hint(hint))
}

func properties() ArgSpec {
	return Allow(types.ArgProperty, List(), Hint(hintProperty))
}

func propertyMutations() []ArgSpec {
	return []ArgSpec{
		Allow(types.ArgSetProperty, List(), Hint(hintSetProperty)),
		Allow(types.ArgRemoveProperty, List(), Hint(hintRemoveProperty)),
	}
}

func storageNames() []string {
	var out []string
	for _, st := range types.StorageTypes {
		out = append(out, string(st))
	}
	return out
}

func forbiddenFor(st types.StorageType, groups ...[]string) []ArgSpec {
	var out []ArgSpec
	for _, g := range groups {
		out = append(out, ForbidAll("when storage_type is "+string(st), g...)...)
	}
	return out
}

func with(specs []ArgSpec, more ...ArgSpec) []ArgSpec {
	return append(specs, more...)
}

func catalogRules() {
	create := types.NewCommand(types.FamilyCatalogs, types.SubcommandCreate)
	MustRegister(create, []ArgSpec{
		name("The name of the catalog"),
		Allow(types.ArgType, OneOf(string(types.CatalogTypeInternal), string(types.CatalogTypeExternal)),
			Default(string(types.CatalogTypeInternal)),
			Hint("The type of catalog to create in [INTERNAL, EXTERNAL]. INTERNAL by default.")),
		RequireWhen(types.ArgRemoteURL, ArgEquals(types.ArgType, string(types.CatalogTypeExternal)), URL(),
			Hint("(For external catalogs) The remote URL to use")),
		Require(types.ArgDefaultBaseLocation, URI(), Hint("(Required) Default base location of the catalog")),
		Require(types.ArgStorageType, OneOf(storageNames()...), Hint("(Required) The type of storage to use for the catalog")),
		Allow(types.ArgAllowedLocation, List(), URI(),
			Hint("An allowed location for files tracked by the catalog. Multiple locations can be provided by specifying this option more than once.")),
		properties(),
	},
		WithSummary("Create a catalog"),
		WithOverlay(types.ArgStorageType, string(types.StorageTypeS3), with(
			[]ArgSpec{
				Require(types.ArgRoleArn, ARN(), Hint("(Required for S3) A role ARN to use when connecting to S3")),
				Allow(types.ArgExternalID, NotBlank(), Hint("(Only for S3) The external ID to use when connecting to S3")),
				Allow(types.ArgRegion, NotBlank(), Hint("(Only for S3) The region to use when connecting to S3")),
				Allow(types.ArgUserArn, ARN(), Hint("(Only for S3) A user ARN to use when connecting to S3")),
			},
			forbiddenFor(types.StorageTypeS3, azureArgs, gcsArgs)...)...,
		),
		WithOverlay(types.ArgStorageType, string(types.StorageTypeAzure), with(
			[]ArgSpec{
				Require(types.ArgTenantID, NotBlank(), Hint("(Required for Azure) A tenant ID to use when connecting to Azure Storage")),
				Allow(types.ArgMultiTenantAppName, NotBlank(), Hint("(Only for Azure) The app name to use when connecting to Azure Storage")),
				Allow(types.ArgConsentURL, URL(), Hint("(Only for Azure) A consent URL granting permissions for the Azure Storage location")),
			},
			forbiddenFor(types.StorageTypeAzure, s3Args, gcsArgs)...)...,
		),
		WithOverlay(types.ArgStorageType, string(types.StorageTypeGCS), with(
			[]ArgSpec{
				Allow(types.ArgServiceAccount, Email(), Hint("(Only for GCS) The service account to use when connecting to GCS")),
			},
			forbiddenFor(types.StorageTypeGCS, s3Args, azureArgs)...)...,
		),
		WithOverlay(types.ArgStorageType, string(types.StorageTypeFile),
			forbiddenFor(types.StorageTypeFile, s3Args, azureArgs, gcsArgs)...,
		),
	)

	MustRegister(types.NewCommand(types.FamilyCatalogs, types.SubcommandDelete),
		[]ArgSpec{name("The name of the catalog")}, WithSummary("Delete a catalog"))
	MustRegister(types.NewCommand(types.FamilyCatalogs, types.SubcommandGet),
		[]ArgSpec{name("The name of the catalog")}, WithSummary("Get a catalog"))
	MustRegister(types.NewCommand(types.FamilyCatalogs, types.SubcommandList),
		nil, WithSummary("List catalogs"))
	MustRegister(types.NewCommand(types.FamilyCatalogs, types.SubcommandUpdate),
		with([]ArgSpec{
			name("The name of the catalog"),
			Allow(types.ArgDefaultBaseLocation, URI(), Hint("A new default base location for the catalog")),
		}, propertyMutations()...),
		WithSummary("Update a catalog"))
}

func principalRules() {
	MustRegister(types.NewCommand(types.FamilyPrincipals, types.SubcommandCreate),
		[]ArgSpec{
			name("The principal name"),
			Allow(types.ArgType, OneOf(string(types.PrincipalTypeService)), Default(string(types.PrincipalTypeService)),
				Hint("The type of principal to create in [SERVICE]")),
			properties(),
		}, WithSummary("Create a principal"))
	for _, sub := range []types.Subcommand{types.SubcommandDelete, types.SubcommandGet, types.SubcommandRotateCredentials} {
		MustRegister(types.NewCommand(types.FamilyPrincipals, sub),
			[]ArgSpec{name("The principal name")}, WithSummary(summary(sub, "a principal")))
	}
	MustRegister(types.NewCommand(types.FamilyPrincipals, types.SubcommandList), nil, WithSummary("List principals"))
	MustRegister(types.NewCommand(types.FamilyPrincipals, types.SubcommandUpdate),
		with([]ArgSpec{name("The principal name")}, propertyMutations()...), WithSummary("Update a principal"))
}

func principalRoleRules() {
	const roleHint = "The name of a principal role"
	MustRegister(types.NewCommand(types.FamilyPrincipalRoles, types.SubcommandCreate),
		[]ArgSpec{name(roleHint), properties()}, WithSummary("Create a principal role"))
	for _, sub := range []types.Subcommand{types.SubcommandDelete, types.SubcommandGet} {
		MustRegister(types.NewCommand(types.FamilyPrincipalRoles, sub),
			[]ArgSpec{name(roleHint)}, WithSummary(summary(sub, "a principal role")))
	}
	MustRegister(types.NewCommand(types.FamilyPrincipalRoles, types.SubcommandList),
		[]ArgSpec{
			Allow(types.ArgPrincipal, NotBlank(),
				Hint("The name of a principal. If provided, show only principal roles assigned to this principal.")),
			RequireWhen(types.ArgCatalogRole, ArgPresent(types.ArgCatalog), NotBlank(),
				Hint("The name of a catalog role. If provided, show only principal roles assigned to this catalog role.")),
			RequireWhen(types.ArgCatalog, ArgPresent(types.ArgCatalogRole), NotBlank(),
				Hint("The catalog of the catalog role")),
		},
		WithExclusive(types.ArgPrincipal, types.ArgCatalogRole),
		WithSummary("List principal roles, optionally limited to those held a given principal"))
	MustRegister(types.NewCommand(types.FamilyPrincipalRoles, types.SubcommandUpdate),
		with([]ArgSpec{name(roleHint)}, propertyMutations()...), WithSummary("Update a principal role"))
	MustRegister(types.NewCommand(types.FamilyPrincipalRoles, types.SubcommandGrant),
		[]ArgSpec{name(roleHint), Require(types.ArgPrincipal, NotBlank(), Hint("A principal to grant this principal role to"))},
		WithSummary("Grant a principal role to a principal"))
	MustRegister(types.NewCommand(types.FamilyPrincipalRoles, types.SubcommandRevoke),
		[]ArgSpec{name(roleHint), Require(types.ArgPrincipal, NotBlank(), Hint("A principal to revoke this principal role from"))},
		WithSummary("Revoke a principal role from a principal"))
}

func catalogRoleRules() {
	const roleHint = "The name of a catalog role"
	catalog := func() ArgSpec {
		return Require(types.ArgCatalog, NotBlank(), Hint("The name of an existing catalog"))
	}
	MustRegister(types.NewCommand(types.FamilyCatalogRoles, types.SubcommandCreate),
		[]ArgSpec{name(roleHint), catalog(), properties()}, WithSummary("Create a catalog role"))
	for _, sub := range []types.Subcommand{types.SubcommandDelete, types.SubcommandGet} {
		MustRegister(types.NewCommand(types.FamilyCatalogRoles, sub),
			[]ArgSpec{name(roleHint), catalog()}, WithSummary(summary(sub, "a catalog role")))
	}
	MustRegister(types.NewCommand(types.FamilyCatalogRoles, types.SubcommandList),
		[]ArgSpec{catalog(), Allow(types.ArgPrincipalRole, NotBlank(), Hint("The name of a principal role"))},
		WithSummary("List catalog roles within a catalog. Optionally, specify a principal role."))
	MustRegister(types.NewCommand(types.FamilyCatalogRoles, types.SubcommandUpdate),
		with([]ArgSpec{name(roleHint), catalog()}, propertyMutations()...), WithSummary("Update a catalog role"))
	MustRegister(types.NewCommand(types.FamilyCatalogRoles, types.SubcommandGrant),
		[]ArgSpec{name(roleHint), catalog(), Require(types.ArgPrincipalRole, NotBlank(), Hint("The name of a principal role"))},
		WithSummary("Grant a catalog role to a principal role"))
	MustRegister(types.NewCommand(types.FamilyCatalogRoles, types.SubcommandRevoke),
		[]ArgSpec{name(roleHint), catalog(), Require(types.ArgPrincipalRole, NotBlank(), Hint("The name of a principal role"))},
		WithSummary("Revoke a catalog role from a principal role"))
}

var securables = map[types.Subcommand]types.Securable{
	types.SubcommandCatalog:   types.SecurableCatalog,
	types.SubcommandNamespace: types.SecurableNamespace,
	types.SubcommandTable:     types.SecurableTable,
	types.SubcommandView:      types.SecurableView,
}

// SecurableOf returns the privilege level a privileges subcommand targets.
func SecurableOf(sub types.Subcommand) (types.Securable, bool) {
	s, ok := securables[sub]
	return s, ok
}

// PrivilegeSubcommands returns the privileges subcommands that grant and revoke, sorted.
func PrivilegeSubcommands() []types.Subcommand {
	subs := make([]types.Subcommand, 0, len(securables))
	for sub := range securables {
		subs = append(subs, sub)
	}
	slices.Sort(subs)
	return subs
}

func privilegeRules() {
	target := func() []ArgSpec {
		return []ArgSpec{
			Require(types.ArgCatalog, NotBlank(), Hint("The name of a catalog")),
			Require(types.ArgCatalogRole, NotBlank(), Hint("The name of a catalog role")),
		}
	}
	MustRegister(types.NewCommand(types.FamilyPrivileges, types.SubcommandList), target(),
		WithSummary("List privileges granted to a catalog role"))

	for sub, level := range securables {
		scope := target()
		scope = append(scope, Require(types.ArgPrivilege, OneOf(vocabulary.Privileges(level)...),
			Hint("The privilege to grant or revoke")))
		if level != types.SecurableCatalog {
			scope = append(scope, Require(types.ArgNamespace, NotBlank(), Hint("A period-delimited namespace")))
		}
		switch level {
		case types.SecurableTable:
			scope = append(scope, Require(types.ArgTable, NotBlank(), Hint("The name of a table")))
		case types.SecurableView:
			scope = append(scope, Require(types.ArgView, NotBlank(), Hint("The name of a view")))
		}

		grant := append(append([]ArgSpec{}, scope...), Forbid(types.ArgCascade, "on grant; cascade only applies to revoke"))
		MustRegister(types.NewCommand(types.FamilyPrivileges, sub, types.ActionGrant), grant,
			WithSummary("Grant a "+string(level)+" privilege to a catalog role"))

		revoke := append(append([]ArgSpec{}, scope...), Allow(types.ArgCascade, Switch(),
			Hint("When revoking privileges, additionally revoke privileges that depend on the specified privilege")))
		MustRegister(types.NewCommand(types.FamilyPrivileges, sub, types.ActionRevoke), revoke,
			WithSummary("Revoke a "+string(level)+" privilege from a catalog role"))
	}
}

func namespaceRules() {
	catalog := func() ArgSpec {
		return Require(types.ArgCatalog, NotBlank(), Hint("The name of an existing catalog"))
	}
	namespace := func() ArgSpec {
		return Require(types.ArgNamespace, NotBlank(), Hint("A period-delimited namespace"))
	}
	MustRegister(types.NewCommand(types.FamilyNamespaces, types.SubcommandCreate),
		[]ArgSpec{
			catalog(), namespace(),
			Allow(types.ArgLocation, URI(),
				Hint("If specified, the location at which to store the namespace and entities inside it")),
			properties(),
		}, WithSummary("Create a namespace"))
	for _, sub := range []types.Subcommand{types.SubcommandDelete, types.SubcommandGet} {
		MustRegister(types.NewCommand(types.FamilyNamespaces, sub),
			[]ArgSpec{catalog(), namespace()}, WithSummary(summary(sub, "a namespace")))
	}
	MustRegister(types.NewCommand(types.FamilyNamespaces, types.SubcommandList),
		[]ArgSpec{catalog(), Allow(types.ArgParent, NotBlank(), Hint("If specified, list namespaces inside this parent namespace"))},
		WithSummary("List namespaces"))
}

func profileRules() {
	const profileHint = "The name of the profile"
	MustRegister(types.NewCommand(types.FamilyProfiles, types.SubcommandCreate),
		[]ArgSpec{
			name(profileHint),
			Require(types.ArgClientID, NotBlank(), Hint("The client ID for the profile")),
			Require(types.ArgClientSecret, NotBlank(), Hint("The client secret for the profile")),
			Allow(types.ArgHost, Host(), Hint("The host of the catalog service")),
			Allow(types.ArgPort, Port(), Hint("The port of the catalog service")),
		}, WithSummary("Create a profile"))
	for _, sub := range []types.Subcommand{types.SubcommandDelete, types.SubcommandGet} {
		MustRegister(types.NewCommand(types.FamilyProfiles, sub),
			[]ArgSpec{name(profileHint)}, WithSummary(summary(sub, "a profile")))
	}
	MustRegister(types.NewCommand(types.FamilyProfiles, types.SubcommandList), nil, WithSummary("List profiles"))
	MustRegister(types.NewCommand(types.FamilyProfiles, types.SubcommandUpdate),
		[]ArgSpec{
			name(profileHint),
			Allow(types.ArgClientID, NotBlank(), Hint("The client ID for the profile")),
			Allow(types.ArgClientSecret, NotBlank(), Hint("The client secret for the profile")),
			Allow(types.ArgHost, Host(), Hint("The host of the catalog service")),
			Allow(types.ArgPort, Port(), Hint("The port of the catalog service")),
		}, WithSummary("Update a profile"))
}

func summary(sub types.Subcommand, what string) string {
	verb := strings.ReplaceAll(string(sub), "-", " ")
	return strings.ToUpper(verb[:1]) + verb[1:] + " " + what
}

func init() {
	catalogRules()
	principalRules()
	principalRoleRules()
	catalogRoleRules()
	privilegeRules()
	namespaceRules()
	profileRules()
}
