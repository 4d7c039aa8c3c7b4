package privilege

import (
	"context"
	"net/http"
	"testing"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/builderregistry"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func target(kv ...string) types.ArgumentSet {
	as := types.ArgumentSet{
		types.ArgCatalog:     types.StringValue("sales"),
		types.ArgCatalogRole: types.StringValue("reader"),
	}
	for i := 0; i+1 < len(kv); i += 2 {
		as[kv[i]] = types.StringValue(kv[i+1])
	}
	return as
}

func TestGrantBuilders(t *testing.T) {
	tests := []struct {
		name   string
		cmd    types.Command
		args   types.ArgumentSet
		method string
		path   string
		body   string
	}{
		{
			name:   "catalog grant",
			cmd:    types.NewCommand(types.FamilyPrivileges, types.SubcommandCatalog, types.ActionGrant),
			args:   target(types.ArgPrivilege, "catalog_manage_content"),
			method: http.MethodPut,
			path:   "/api/management/v1/catalogs/sales/catalog-roles/reader/grants",
			body:   `{"grant": {"type": "catalog", "privilege": "CATALOG_MANAGE_CONTENT"}}`,
		},
		{
			name:   "namespace revoke",
			cmd:    types.NewCommand(types.FamilyPrivileges, types.SubcommandNamespace, types.ActionRevoke),
			args:   target(types.ArgPrivilege, "NAMESPACE_LIST", types.ArgNamespace, "a.b"),
			method: http.MethodPost,
			path:   "/api/management/v1/catalogs/sales/catalog-roles/reader/grants?cascade=false",
			body:   `{"grant": {"type": "namespace", "namespace": ["a", "b"], "privilege": "NAMESPACE_LIST"}}`,
		},
		{
			name: "table revoke with cascade",
			cmd:  types.NewCommand(types.FamilyPrivileges, types.SubcommandTable, types.ActionRevoke),
			args: target(types.ArgPrivilege, "TABLE_READ_DATA", types.ArgNamespace, "a",
				types.ArgTable, "orders", types.ArgCascade, "true"),
			method: http.MethodPost,
			path:   "/api/management/v1/catalogs/sales/catalog-roles/reader/grants?cascade=true",
			body:   `{"grant": {"type": "table", "namespace": ["a"], "tableName": "orders", "privilege": "TABLE_READ_DATA"}}`,
		},
		{
			name:   "view grant",
			cmd:    types.NewCommand(types.FamilyPrivileges, types.SubcommandView, types.ActionGrant),
			args:   target(types.ArgPrivilege, "VIEW_DROP", types.ArgNamespace, "a.b.c", types.ArgView, "daily"),
			method: http.MethodPut,
			path:   "/api/management/v1/catalogs/sales/catalog-roles/reader/grants",
			body:   `{"grant": {"type": "view", "namespace": ["a", "b", "c"], "viewName": "daily", "privilege": "VIEW_DROP"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builderregistry.GetBuilder(tt.cmd)
			require.NotNil(t, b)
			p, err := b(context.Background(), tt.args, nil, requestmanager.NewOptionsConfig())
			require.NoError(t, err)
			assert.Equal(t, tt.cmd, p.Command())
			assert.Equal(t, tt.method, p.Method())
			assert.Equal(t, tt.path, p.URLPath())
			assert.JSONEq(t, tt.body, string(p.Body()))
		})
	}
}

func TestGrantBuilder_MalformedNamespace(t *testing.T) {
	b := builderregistry.GetBuilder(types.NewCommand(types.FamilyPrivileges, types.SubcommandNamespace, types.ActionGrant))
	_, err := b(context.Background(), target(types.ArgPrivilege, "NAMESPACE_LIST", types.ArgNamespace, "a..b"), nil, nil)
	var ves schemaerr.ValidationErrors
	require.ErrorAs(t, err, &ves)
	require.Len(t, ves, 1)
	assert.Equal(t, types.ArgNamespace, ves[0].Field)
	assert.Equal(t, schemaerr.KindMalformedNamespace, ves[0].Kind)
}

func TestBuildList(t *testing.T) {
	p, err := buildList(context.Background(), target(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/management/v1/catalogs/sales/catalog-roles/reader/grants", p.URLPath())
}
