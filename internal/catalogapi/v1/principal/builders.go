package principal

import (
	"context"
	"net/http"
	"strings"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/builderregistry"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/payload"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

const collection = "principals"

func command(sub types.Subcommand) types.Command {
	return types.NewCommand(types.FamilyPrincipals, sub)
}

func request(sub types.Subcommand, method string, body any, path ...string) requestmanager.Request {
	return requestmanager.Request{
		Command: command(sub),
		Target:  requestmanager.TargetManagement,
		Method:  method,
		Path:    append([]string{collection}, path...),
		Body:    body,
	}
}

func buildCreate(ctx context.Context, args types.ArgumentSet, props types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	pt, ok := types.ParsePrincipalType(args.Value(types.ArgType))
	if !ok && !args.Has(types.ArgType) {
		pt = types.PrincipalTypeService
	}
	body := &CreatePrincipalRequest{
		Principal: Principal{
			Name:       args.Value(types.ArgName),
			Type:       strings.ToUpper(string(pt)),
			Properties: payload.Properties(props),
		},
	}
	return payload.Build(request(types.SubcommandCreate, http.MethodPost, body), cfg)
}

func buildDelete(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(request(types.SubcommandDelete, http.MethodDelete, nil, args.Value(types.ArgName)), cfg)
}

func buildGet(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(request(types.SubcommandGet, http.MethodGet, nil, args.Value(types.ArgName)), cfg)
}

func buildList(ctx context.Context, _ types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(request(types.SubcommandList, http.MethodGet, nil), cfg)
}

func buildUpdate(ctx context.Context, args types.ArgumentSet, props types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	body := &UpdatePrincipalRequest{Properties: props.Clone()}
	return payload.Build(request(types.SubcommandUpdate, http.MethodPut, body, args.Value(types.ArgName)), cfg)
}

func buildRotateCredentials(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(request(types.SubcommandRotateCredentials, http.MethodPost, nil, args.Value(types.ArgName), "rotate"), cfg)
}

func init() {
	builderregistry.RegisterBuilder(command(types.SubcommandCreate), buildCreate)
	builderregistry.RegisterBuilder(command(types.SubcommandDelete), buildDelete)
	builderregistry.RegisterBuilder(command(types.SubcommandGet), buildGet)
	builderregistry.RegisterBuilder(command(types.SubcommandList), buildList)
	builderregistry.RegisterBuilder(command(types.SubcommandUpdate), buildUpdate)
	builderregistry.RegisterBuilder(command(types.SubcommandRotateCredentials), buildRotateCredentials)
}
