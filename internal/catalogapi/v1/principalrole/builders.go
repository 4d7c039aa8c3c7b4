package principalrole

import (
	"context"
	"net/http"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/builderregistry"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/payload"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

const collection = "principal-roles"

func command(sub types.Subcommand) types.Command {
	return types.NewCommand(types.FamilyPrincipalRoles, sub)
}

func request(sub types.Subcommand, method string, body any, path ...string) requestmanager.Request {
	return requestmanager.Request{
		Command: command(sub),
		Target:  requestmanager.TargetManagement,
		Method:  method,
		Path:    path,
		Body:    body,
	}
}

func buildCreate(ctx context.Context, args types.ArgumentSet, props types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	body := &CreatePrincipalRoleRequest{
		PrincipalRole: PrincipalRole{Name: args.Value(types.ArgName), Properties: payload.Properties(props)},
	}
	return payload.Build(request(types.SubcommandCreate, http.MethodPost, body, collection), cfg)
}

func buildDelete(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(request(types.SubcommandDelete, http.MethodDelete, nil, collection, args.Value(types.ArgName)), cfg)
}

func buildGet(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(request(types.SubcommandGet, http.MethodGet, nil, collection, args.Value(types.ArgName)), cfg)
}

// buildList lists every principal role, the roles of one principal, or the roles holding one
// catalog role.
func buildList(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	var path []string
	switch {
	case args.Has(types.ArgPrincipal):
		path = []string{"principals", args.Value(types.ArgPrincipal), collection}
	case args.Has(types.ArgCatalogRole):
		path = []string{"catalogs", args.Value(types.ArgCatalog), "catalog-roles", args.Value(types.ArgCatalogRole), collection}
	default:
		path = []string{collection}
	}
	return payload.Build(request(types.SubcommandList, http.MethodGet, nil, path...), cfg)
}

func buildUpdate(ctx context.Context, args types.ArgumentSet, props types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	body := &UpdatePrincipalRoleRequest{Properties: props.Clone()}
	return payload.Build(request(types.SubcommandUpdate, http.MethodPut, body, collection, args.Value(types.ArgName)), cfg)
}

func buildGrant(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	body := &GrantPrincipalRoleRequest{PrincipalRole: PrincipalRole{Name: args.Value(types.ArgName)}}
	return payload.Build(request(types.SubcommandGrant, http.MethodPut, body,
		"principals", args.Value(types.ArgPrincipal), collection), cfg)
}

func buildRevoke(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(request(types.SubcommandRevoke, http.MethodDelete, nil,
		"principals", args.Value(types.ArgPrincipal), collection, args.Value(types.ArgName)), cfg)
}

func init() {
	builderregistry.RegisterBuilder(command(types.SubcommandCreate), buildCreate)
	builderregistry.RegisterBuilder(command(types.SubcommandDelete), buildDelete)
	builderregistry.RegisterBuilder(command(types.SubcommandGet), buildGet)
	builderregistry.RegisterBuilder(command(types.SubcommandList), buildList)
	builderregistry.RegisterBuilder(command(types.SubcommandUpdate), buildUpdate)
	builderregistry.RegisterBuilder(command(types.SubcommandGrant), buildGrant)
	builderregistry.RegisterBuilder(command(types.SubcommandRevoke), buildRevoke)
}
