package catalogrole

import (
	"context"
	"net/http"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/builderregistry"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/payload"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

const collection = "catalog-roles"

func command(sub types.Subcommand) types.Command {
	return types.NewCommand(types.FamilyCatalogRoles, sub)
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

// rolePath is catalogs/{catalog}/catalog-roles followed by extra segments.
func rolePath(args types.ArgumentSet, extra ...string) []string {
	return append([]string{"catalogs", args.Value(types.ArgCatalog), collection}, extra...)
}

// grantPath addresses the catalog roles a principal role holds in a catalog.
func grantPath(args types.ArgumentSet, extra ...string) []string {
	return append([]string{"principal-roles", args.Value(types.ArgPrincipalRole), collection, args.Value(types.ArgCatalog)}, extra...)
}

func buildCreate(ctx context.Context, args types.ArgumentSet, props types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	body := &CreateCatalogRoleRequest{
		CatalogRole: CatalogRole{Name: args.Value(types.ArgName), Properties: payload.Properties(props)},
	}
	return payload.Build(request(types.SubcommandCreate, http.MethodPost, body, rolePath(args)...), cfg)
}

func buildDelete(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(request(types.SubcommandDelete, http.MethodDelete, nil, rolePath(args, args.Value(types.ArgName))...), cfg)
}

func buildGet(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(request(types.SubcommandGet, http.MethodGet, nil, rolePath(args, args.Value(types.ArgName))...), cfg)
}

func buildList(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	path := rolePath(args)
	if args.Has(types.ArgPrincipalRole) {
		path = grantPath(args)
	}
	return payload.Build(request(types.SubcommandList, http.MethodGet, nil, path...), cfg)
}

func buildUpdate(ctx context.Context, args types.ArgumentSet, props types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	body := &UpdateCatalogRoleRequest{Properties: props.Clone()}
	return payload.Build(request(types.SubcommandUpdate, http.MethodPut, body, rolePath(args, args.Value(types.ArgName))...), cfg)
}

func buildGrant(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	body := &GrantCatalogRoleRequest{CatalogRole: CatalogRole{Name: args.Value(types.ArgName)}}
	return payload.Build(request(types.SubcommandGrant, http.MethodPut, body, grantPath(args)...), cfg)
}

func buildRevoke(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(request(types.SubcommandRevoke, http.MethodDelete, nil, grantPath(args, args.Value(types.ArgName))...), cfg)
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
