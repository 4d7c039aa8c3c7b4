package catalogrole

import (
	"context"
	"net/http"
	"testing"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilders(t *testing.T) {
	role := types.ArgumentSet{
		types.ArgName:          types.StringValue("reader"),
		types.ArgCatalog:       types.StringValue("sales"),
		types.ArgPrincipalRole: types.StringValue("analyst"),
	}
	tests := []struct {
		name   string
		build  func() (*requestmanager.RequestPayload, error)
		method string
		path   string
		body   string
	}{
		{
			name: "create",
			build: func() (*requestmanager.RequestPayload, error) {
				return buildCreate(context.Background(), role, types.PropertyMap{"k": "v"}, nil)
			},
			method: http.MethodPost,
			path:   "/api/management/v1/catalogs/sales/catalog-roles",
			body:   `{"catalogRole": {"name": "reader", "properties": {"k": "v"}}}`,
		},
		{
			name: "get",
			build: func() (*requestmanager.RequestPayload, error) {
				return buildGet(context.Background(), role, nil, nil)
			},
			method: http.MethodGet,
			path:   "/api/management/v1/catalogs/sales/catalog-roles/reader",
		},
		{
			name: "list in catalog",
			build: func() (*requestmanager.RequestPayload, error) {
				return buildList(context.Background(), types.ArgumentSet{types.ArgCatalog: types.StringValue("sales")}, nil, nil)
			},
			method: http.MethodGet,
			path:   "/api/management/v1/catalogs/sales/catalog-roles",
		},
		{
			name: "list held by principal role",
			build: func() (*requestmanager.RequestPayload, error) {
				return buildList(context.Background(), role, nil, nil)
			},
			method: http.MethodGet,
			path:   "/api/management/v1/principal-roles/analyst/catalog-roles/sales",
		},
		{
			name: "grant",
			build: func() (*requestmanager.RequestPayload, error) {
				return buildGrant(context.Background(), role, nil, nil)
			},
			method: http.MethodPut,
			path:   "/api/management/v1/principal-roles/analyst/catalog-roles/sales",
			body:   `{"catalogRole": {"name": "reader"}}`,
		},
		{
			name: "revoke",
			build: func() (*requestmanager.RequestPayload, error) {
				return buildRevoke(context.Background(), role, nil, nil)
			},
			method: http.MethodDelete,
			path:   "/api/management/v1/principal-roles/analyst/catalog-roles/sales/reader",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.method, p.Method())
			assert.Equal(t, tt.path, p.URLPath())
			if tt.body == "" {
				assert.False(t, p.HasBody())
			} else {
				assert.JSONEq(t, tt.body, string(p.Body()))
			}
		})
	}
}
