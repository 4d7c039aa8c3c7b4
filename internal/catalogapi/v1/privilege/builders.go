package privilege

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/argschema"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/builderregistry"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/payload"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/vocabulary"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

func grantsPath(args types.ArgumentSet) []string {
	return []string{"catalogs", args.Value(types.ArgCatalog), "catalog-roles", args.Value(types.ArgCatalogRole), "grants"}
}

// NewGrant builds the grant for a privileges subcommand. A malformed namespace is reported
// instead.
func NewGrant(level types.Securable, args types.ArgumentSet) (Grant, error) {
	privilege, _ := vocabulary.Privilege(level, args.Value(types.ArgPrivilege))
	g := Grant{Type: string(level), Privilege: privilege}
	if level != types.SecurableCatalog {
		ns, ves := payload.NamespaceArg(args, types.ArgNamespace)
		if ves != nil {
			return Grant{}, ves
		}
		g.Namespace = ns
	}
	switch level {
	case types.SecurableTable:
		g.TableName = args.Value(types.ArgTable)
	case types.SecurableView:
		g.ViewName = args.Value(types.ArgView)
	}
	return g, nil
}

func buildList(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(requestmanager.Request{
		Command: types.NewCommand(types.FamilyPrivileges, types.SubcommandList),
		Target:  requestmanager.TargetManagement,
		Method:  http.MethodGet,
		Path:    grantsPath(args),
	}, cfg)
}

// grantBuilder returns the builder of one privileges subcommand and action. Revoking is a POST
// to the grants collection; cascade travels as a query parameter.
func grantBuilder(sub types.Subcommand, level types.Securable, action types.Action) builderregistry.Builder {
	cmd := types.NewCommand(types.FamilyPrivileges, sub, action)
	return func(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
		g, err := NewGrant(level, args)
		if err != nil {
			return nil, err
		}
		r := requestmanager.Request{
			Command: cmd,
			Target:  requestmanager.TargetManagement,
			Method:  http.MethodPut,
			Path:    grantsPath(args),
			Body:    &GrantRequest{Grant: g},
		}
		if action == types.ActionRevoke {
			cascade := false
			if v, ok := args.Get(types.ArgCascade); ok {
				cascade, _ = strconv.ParseBool(v.String())
			}
			r.Method = http.MethodPost
			r.Query = map[string]string{"cascade": strconv.FormatBool(cascade)}
		}
		return payload.Build(r, cfg)
	}
}

func init() {
	builderregistry.RegisterBuilder(types.NewCommand(types.FamilyPrivileges, types.SubcommandList), buildList)
	for _, sub := range argschema.PrivilegeSubcommands() {
		level, _ := argschema.SecurableOf(sub)
		for _, action := range []types.Action{types.ActionGrant, types.ActionRevoke} {
			builderregistry.RegisterBuilder(types.NewCommand(types.FamilyPrivileges, sub, action), grantBuilder(sub, level, action))
		}
	}
}
