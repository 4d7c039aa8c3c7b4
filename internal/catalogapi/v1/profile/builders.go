package profile

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/builderregistry"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/payload"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

const collection = "profiles"

func command(sub types.Subcommand) types.Command {
	return types.NewCommand(types.FamilyProfiles, sub)
}

func request(sub types.Subcommand, method string, body any, path ...string) requestmanager.Request {
	return requestmanager.Request{
		Command: command(sub),
		Target:  requestmanager.TargetProfileStore,
		Method:  method,
		Path:    append([]string{collection}, path...),
		Body:    body,
	}
}

func port(args types.ArgumentSet) int {
	p, _ := strconv.Atoi(args.Value(types.ArgPort))
	return p
}

func buildCreate(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	name := args.Value(types.ArgName)
	body := &Profile{
		Name:         name,
		ClientID:     args.Value(types.ArgClientID),
		ClientSecret: args.Value(types.ArgClientSecret),
		Host:         args.Value(types.ArgHost),
		Port:         port(args),
	}
	return payload.Build(request(types.SubcommandCreate, http.MethodPost, body, name), cfg)
}

func buildUpdate(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	name := args.Value(types.ArgName)
	body := &ProfileUpdate{
		Name:         name,
		ClientID:     args.Value(types.ArgClientID),
		ClientSecret: args.Value(types.ArgClientSecret),
		Host:         args.Value(types.ArgHost),
		Port:         port(args),
	}
	return payload.Build(request(types.SubcommandUpdate, http.MethodPut, body, name), cfg)
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

func init() {
	builderregistry.RegisterBuilder(command(types.SubcommandCreate), buildCreate)
	builderregistry.RegisterBuilder(command(types.SubcommandDelete), buildDelete)
	builderregistry.RegisterBuilder(command(types.SubcommandGet), buildGet)
	builderregistry.RegisterBuilder(command(types.SubcommandList), buildList)
	builderregistry.RegisterBuilder(command(types.SubcommandUpdate), buildUpdate)
}
