package argschema

import (
	"testing"

	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/vocabulary"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func argSet(kv ...string) types.ArgumentSet {
	as := make(types.ArgumentSet)
	for i := 0; i+1 < len(kv); i += 2 {
		as[kv[i]] = types.StringValue(kv[i+1])
	}
	return as
}

func catalogCreate(kv ...string) types.ArgumentSet {
	base := []string{
		types.ArgName, "sales",
		types.ArgDefaultBaseLocation, "s3://bucket/warehouse",
	}
	return argSet(append(base, kv...)...)
}

var (
	createCatalog = types.NewCommand(types.FamilyCatalogs, types.SubcommandCreate)
	roleArn       = "arn:aws:iam::123456789012:role/catalog-access"
)

type violation struct {
	field string
	kind  schemaerr.Kind
}

func violations(ves schemaerr.ValidationErrors) []violation {
	var out []violation
	for _, ve := range ves {
		out = append(out, violation{ve.Field, ve.Kind})
	}
	return out
}

func TestValidate_CatalogCreate(t *testing.T) {
	tests := []struct {
		name     string
		args     types.ArgumentSet
		expected []violation
	}{
		{
			name: "valid s3 catalog",
			args: catalogCreate(types.ArgStorageType, "s3", types.ArgRoleArn, roleArn),
		},
		{
			name: "storage type is case insensitive",
			args: catalogCreate(types.ArgStorageType, "S3", types.ArgRoleArn, roleArn, types.ArgRegion, "us-west-2"),
		},
		{
			name: "external catalog without remote url",
			args: catalogCreate(types.ArgStorageType, "s3", types.ArgRoleArn, roleArn, types.ArgType, "external"),
			expected: []violation{
				{types.ArgRemoteURL, schemaerr.KindMissingRequiredArgument},
			},
		},
		{
			name: "external catalog with remote url",
			args: catalogCreate(types.ArgStorageType, "s3", types.ArgRoleArn, roleArn,
				types.ArgType, "EXTERNAL", types.ArgRemoteURL, "https://remote.example.com/api"),
		},
		{
			name: "s3 catalog with an azure argument",
			args: catalogCreate(types.ArgStorageType, "s3", types.ArgRoleArn, roleArn, types.ArgTenantID, "tenant"),
			expected: []violation{
				{types.ArgTenantID, schemaerr.KindForbiddenArgumentSupplied},
			},
		},
		{
			name: "s3 catalog without role arn",
			args: catalogCreate(types.ArgStorageType, "s3"),
			expected: []violation{
				{types.ArgRoleArn, schemaerr.KindMissingRequiredArgument},
			},
		},
		{
			name: "azure catalog",
			args: catalogCreate(types.ArgStorageType, "azure", types.ArgTenantID, "tenant",
				types.ArgConsentURL, "https://login.example.com/consent"),
		},
		{
			name: "azure catalog with s3 and gcs arguments",
			args: catalogCreate(types.ArgStorageType, "azure", types.ArgTenantID, "tenant",
				types.ArgRoleArn, roleArn, types.ArgServiceAccount, "sa@project.iam.gserviceaccount.com"),
			expected: []violation{
				{types.ArgRoleArn, schemaerr.KindForbiddenArgumentSupplied},
				{types.ArgServiceAccount, schemaerr.KindForbiddenArgumentSupplied},
			},
		},
		{
			name: "gcs catalog needs no credentials",
			args: catalogCreate(types.ArgStorageType, "gcs"),
		},
		{
			name: "file catalog forbids credentials",
			args: catalogCreate(types.ArgStorageType, "file", types.ArgRegion, "us-east-1"),
			expected: []violation{
				{types.ArgRegion, schemaerr.KindForbiddenArgumentSupplied},
			},
		},
		{
			name: "missing always-required arguments",
			args: argSet(types.ArgName, "sales"),
			expected: []violation{
				{types.ArgDefaultBaseLocation, schemaerr.KindMissingRequiredArgument},
				{types.ArgStorageType, schemaerr.KindMissingRequiredArgument},
			},
		},
		{
			name: "credentials of two storage types without storage type",
			args: catalogCreate(types.ArgRoleArn, roleArn, types.ArgTenantID, "tenant"),
			expected: []violation{
				{types.ArgRoleArn, schemaerr.KindConflictingArguments},
				{types.ArgStorageType, schemaerr.KindMissingRequiredArgument},
				{types.ArgTenantID, schemaerr.KindConflictingArguments},
			},
		},
		{
			name: "unknown storage type",
			args: catalogCreate(types.ArgStorageType, "hdfs"),
			expected: []violation{
				{types.ArgStorageType, schemaerr.KindUnknownVocabulary},
			},
		},
		{
			name: "malformed role arn",
			args: catalogCreate(types.ArgStorageType, "s3", types.ArgRoleArn, "not-an-arn"),
			expected: []violation{
				{types.ArgRoleArn, schemaerr.KindInvalidArgumentValue},
			},
		},
		{
			name: "argument outside the vocabulary",
			args: catalogCreate(types.ArgStorageType, "gcs", "bucket_name", "b"),
			expected: []violation{
				{"bucket_name", schemaerr.KindUnknownVocabulary},
			},
		},
		{
			name: "argument of another command",
			args: catalogCreate(types.ArgStorageType, "gcs", types.ArgCascade, "true"),
			expected: []violation{
				{types.ArgCascade, schemaerr.KindForbiddenArgumentSupplied},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ves := Validate(createCatalog, tt.args)
			assert.Equal(t, tt.expected, violations(ves))
		})
	}
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	args := argSet(
		types.ArgStorageType, "s3",
		types.ArgType, "external",
		types.ArgTenantID, "tenant",
	)
	ves := Validate(createCatalog, args)
	assert.Equal(t, []violation{
		{types.ArgDefaultBaseLocation, schemaerr.KindMissingRequiredArgument},
		{types.ArgName, schemaerr.KindMissingRequiredArgument},
		{types.ArgRemoteURL, schemaerr.KindMissingRequiredArgument},
		{types.ArgRoleArn, schemaerr.KindMissingRequiredArgument},
		{types.ArgTenantID, schemaerr.KindForbiddenArgumentSupplied},
	}, violations(ves))

	// validation is a pure function of its inputs
	assert.Equal(t, ves, Validate(createCatalog, args))
}

func TestValidate_Principals(t *testing.T) {
	create := types.NewCommand(types.FamilyPrincipals, types.SubcommandCreate)
	assert.Nil(t, Validate(create, argSet(types.ArgName, "etl")))
	assert.Nil(t, Validate(create, argSet(types.ArgName, "etl", types.ArgType, "SERVICE")))
	assert.Equal(t,
		[]violation{{types.ArgType, schemaerr.KindUnknownVocabulary}},
		violations(Validate(create, argSet(types.ArgName, "etl", types.ArgType, "human"))))

	s, ok := Lookup(create)
	require.True(t, ok)
	for _, a := range s.Args() {
		if a.Name == types.ArgType {
			assert.Equal(t, string(types.PrincipalTypeService), a.Default)
		}
	}
}

func TestValidate_PrincipalRolesList(t *testing.T) {
	list := types.NewCommand(types.FamilyPrincipalRoles, types.SubcommandList)
	tests := []struct {
		name     string
		args     types.ArgumentSet
		expected []violation
	}{
		{
			name: "no filter",
			args: argSet(),
		},
		{
			name: "principal filter",
			args: argSet(types.ArgPrincipal, "etl"),
		},
		{
			name: "catalog role filter needs its catalog",
			args: argSet(types.ArgCatalogRole, "reader"),
			expected: []violation{
				{types.ArgCatalog, schemaerr.KindMissingRequiredArgument},
			},
		},
		{
			name: "catalog without a catalog role",
			args: argSet(types.ArgCatalog, "sales"),
			expected: []violation{
				{types.ArgCatalogRole, schemaerr.KindMissingRequiredArgument},
			},
		},
		{
			name: "both filters",
			args: argSet(types.ArgPrincipal, "etl", types.ArgCatalogRole, "reader", types.ArgCatalog, "sales"),
			expected: []violation{
				{types.ArgCatalogRole, schemaerr.KindConflictingArguments},
				{types.ArgPrincipal, schemaerr.KindConflictingArguments},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, violations(Validate(list, tt.args)))
		})
	}
}

func TestValidate_Privileges(t *testing.T) {
	target := func(kv ...string) types.ArgumentSet {
		return argSet(append([]string{types.ArgCatalog, "sales", types.ArgCatalogRole, "reader"}, kv...)...)
	}
	tests := []struct {
		name     string
		cmd      types.Command
		args     types.ArgumentSet
		expected []violation
	}{
		{
			name: "grant on catalog",
			cmd:  types.NewCommand(types.FamilyPrivileges, types.SubcommandCatalog, types.ActionGrant),
			args: target(types.ArgPrivilege, "CATALOG_MANAGE_CONTENT"),
		},
		{
			name: "cascade on grant",
			cmd:  types.NewCommand(types.FamilyPrivileges, types.SubcommandCatalog, types.ActionGrant),
			args: target(types.ArgPrivilege, "CATALOG_MANAGE_CONTENT", types.ArgCascade, "true"),
			expected: []violation{
				{types.ArgCascade, schemaerr.KindForbiddenArgumentSupplied},
			},
		},
		{
			name: "cascade on revoke",
			cmd:  types.NewCommand(types.FamilyPrivileges, types.SubcommandTable, types.ActionRevoke),
			args: target(types.ArgPrivilege, "table_read_data", types.ArgNamespace, "a.b",
				types.ArgTable, "orders", types.ArgCascade, "true"),
		},
		{
			name: "cascade must be a boolean",
			cmd:  types.NewCommand(types.FamilyPrivileges, types.SubcommandNamespace, types.ActionRevoke),
			args: target(types.ArgPrivilege, "NAMESPACE_LIST", types.ArgNamespace, "a", types.ArgCascade, "often"),
			expected: []violation{
				{types.ArgCascade, schemaerr.KindInvalidArgumentValue},
			},
		},
		{
			name: "privilege of another level",
			cmd:  types.NewCommand(types.FamilyPrivileges, types.SubcommandView, types.ActionGrant),
			args: target(types.ArgPrivilege, "TABLE_READ_DATA", types.ArgNamespace, "a", types.ArgView, "v"),
			expected: []violation{
				{types.ArgPrivilege, schemaerr.KindUnknownVocabulary},
			},
		},
		{
			name: "table privilege without its scope",
			cmd:  types.NewCommand(types.FamilyPrivileges, types.SubcommandTable, types.ActionGrant),
			args: target(types.ArgPrivilege, "TABLE_DROP"),
			expected: []violation{
				{types.ArgNamespace, schemaerr.KindMissingRequiredArgument},
				{types.ArgTable, schemaerr.KindMissingRequiredArgument},
			},
		},
		{
			name: "missing action",
			cmd:  types.NewCommand(types.FamilyPrivileges, types.SubcommandCatalog),
			args: target(types.ArgPrivilege, "CATALOG_MANAGE_CONTENT"),
			expected: []violation{
				{vocabulary.FieldAction, schemaerr.KindMissingRequiredArgument},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, violations(Validate(tt.cmd, tt.args)))
		})
	}
}

func TestValidate_ListValues(t *testing.T) {
	update := types.NewCommand(types.FamilyCatalogs, types.SubcommandUpdate)
	args := argSet(types.ArgName, "sales")
	args[types.ArgSetProperty] = types.ListValue("a=1", "b=2")
	args[types.ArgRemoveProperty] = types.ListValue("c")
	assert.Nil(t, Validate(update, args))

	args[types.ArgName] = types.ListValue("a", "b")
	assert.Equal(t,
		[]violation{{types.ArgName, schemaerr.KindInvalidArgumentValue}},
		violations(Validate(update, args)))
}

func TestEveryCommandHasASchema(t *testing.T) {
	for _, cmd := range vocabulary.Commands() {
		_, ok := Lookup(cmd)
		assert.True(t, ok, "no schema for %s", cmd)
	}
}

func TestNewCommandSchema_AuthoringErrors(t *testing.T) {
	cmd := types.NewCommand(types.FamilyCatalogs, types.SubcommandCreate)
	tests := []struct {
		name string
		args []ArgSpec
		opts []SchemaOption
	}{
		{
			name: "duplicate argument",
			args: []ArgSpec{Require(types.ArgName), Allow(types.ArgName)},
		},
		{
			name: "argument outside the vocabulary",
			args: []ArgSpec{Require("bucket")},
		},
		{
			name: "overlay on an undeclared discriminant",
			args: []ArgSpec{Require(types.ArgName)},
			opts: []SchemaOption{WithOverlay(types.ArgStorageType, "s3", Require(types.ArgRoleArn))},
		},
		{
			name: "overlay requires what the base forbids",
			args: []ArgSpec{Require(types.ArgStorageType), Forbid(types.ArgRoleArn, "never")},
			opts: []SchemaOption{WithOverlay(types.ArgStorageType, "s3", Require(types.ArgRoleArn))},
		},
		{
			name: "overlays on different discriminants disagree",
			args: []ArgSpec{Require(types.ArgStorageType), Allow(types.ArgType)},
			opts: []SchemaOption{
				WithOverlay(types.ArgStorageType, "s3", Require(types.ArgRoleArn)),
				WithOverlay(types.ArgType, "external", Forbid(types.ArgRoleArn, "for external catalogs")),
			},
		},
		{
			name: "overlay declared twice",
			args: []ArgSpec{Require(types.ArgStorageType)},
			opts: []SchemaOption{
				WithOverlay(types.ArgStorageType, "s3", Require(types.ArgRoleArn)),
				WithOverlay(types.ArgStorageType, "S3", Allow(types.ArgRegion)),
			},
		},
		{
			name: "two required arguments in an exclusive group",
			args: []ArgSpec{Require(types.ArgPrincipal), Require(types.ArgCatalogRole)},
			opts: []SchemaOption{WithExclusive(types.ArgPrincipal, types.ArgCatalogRole)},
		},
		{
			name: "list switch",
			args: []ArgSpec{Allow(types.ArgCascade, List(), Switch())},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCommandSchema(cmd, tt.args, tt.opts...)
			assert.Error(t, err)
		})
	}

	// the same argument may be required and forbidden under different values of one discriminant
	_, err := NewCommandSchema(cmd, []ArgSpec{Require(types.ArgStorageType)},
		WithOverlay(types.ArgStorageType, "s3", Require(types.ArgRoleArn)),
		WithOverlay(types.ArgStorageType, "azure", Forbid(types.ArgRoleArn, "for azure")))
	assert.NoError(t, err)
}

func TestArgs_MostPermissiveLevel(t *testing.T) {
	s, ok := Lookup(createCatalog)
	require.True(t, ok)
	levels := make(map[string]Level)
	for _, a := range s.Args() {
		levels[a.Name] = a.Level
	}
	assert.Equal(t, Required, levels[types.ArgStorageType])
	assert.Equal(t, ConditionallyRequired, levels[types.ArgRemoteURL])
	assert.Equal(t, Optional, levels[types.ArgRoleArn])
	assert.Equal(t, Optional, levels[types.ArgServiceAccount])
	assert.NotContains(t, levels, types.ArgCascade)
}

func TestArgs_KeepsForbidden(t *testing.T) {
	s, ok := Lookup(types.NewCommand(types.FamilyPrivileges, types.SubcommandCatalog, types.ActionGrant))
	require.True(t, ok)
	var cascade *ArgSpec
	args := s.Args()
	for i := range args {
		if args[i].Name == types.ArgCascade {
			cascade = &args[i]
		}
	}
	require.NotNil(t, cascade)
	assert.Equal(t, Forbidden, cascade.Level)
}

func TestPrivilegeSubcommands(t *testing.T) {
	subs := PrivilegeSubcommands()
	assert.Equal(t, []types.Subcommand{types.SubcommandCatalog, types.SubcommandNamespace, types.SubcommandTable, types.SubcommandView}, subs)
	for _, sub := range subs {
		level, ok := SecurableOf(sub)
		require.True(t, ok, sub)
		assert.Equal(t, string(sub), string(level))
		for _, action := range []types.Action{types.ActionGrant, types.ActionRevoke} {
			_, ok := Lookup(types.NewCommand(types.FamilyPrivileges, sub, action))
			assert.True(t, ok, "%s %s", sub, action)
		}
	}
	_, ok := SecurableOf(types.SubcommandList)
	assert.False(t, ok)
}
