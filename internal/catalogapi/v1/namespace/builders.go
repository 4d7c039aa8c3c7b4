package namespace

import (
	"context"
	"net/http"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/builderregistry"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/payload"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

const collection = "namespaces"

func command(sub types.Subcommand) types.Command {
	return types.NewCommand(types.FamilyNamespaces, sub)
}

func request(sub types.Subcommand, method string, args types.ArgumentSet, body any, path ...string) requestmanager.Request {
	return requestmanager.Request{
		Command: command(sub),
		Target:  requestmanager.TargetCatalog,
		Method:  method,
		Path:    append([]string{args.Value(types.ArgCatalog), collection}, path...),
		Body:    body,
	}
}

func buildCreate(ctx context.Context, args types.ArgumentSet, props types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	ns, ves := payload.NamespaceArg(args, types.ArgNamespace)
	if ves != nil {
		return nil, ves
	}
	props = props.Clone()
	if loc, ok := args.Get(types.ArgLocation); ok {
		props[LocationKey] = loc.String()
	}
	body := &CreateNamespaceRequest{Namespace: ns, Properties: payload.Properties(props)}
	return payload.Build(request(types.SubcommandCreate, http.MethodPost, args, body), cfg)
}

// namespaced builds a request addressed to the namespace in args.
func namespaced(sub types.Subcommand, method string) builderregistry.Builder {
	return func(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
		ns, ves := payload.NamespaceArg(args, types.ArgNamespace)
		if ves != nil {
			return nil, ves
		}
		return payload.Build(request(sub, method, args, nil, payload.JoinNamespace(ns)), cfg)
	}
}

func buildList(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	r := request(types.SubcommandList, http.MethodGet, args, nil)
	if parent, ok := args.Get(types.ArgParent); ok {
		ns, ves := payload.ParseNamespace(types.ArgParent, parent.String())
		if ves != nil {
			return nil, ves
		}
		r.Query = map[string]string{"parent": payload.JoinNamespace(ns)}
	}
	return payload.Build(r, cfg)
}

func init() {
	builderregistry.RegisterBuilder(command(types.SubcommandCreate), buildCreate)
	builderregistry.RegisterBuilder(command(types.SubcommandDelete), namespaced(types.SubcommandDelete, http.MethodDelete))
	builderregistry.RegisterBuilder(command(types.SubcommandGet), namespaced(types.SubcommandGet, http.MethodGet))
	builderregistry.RegisterBuilder(command(types.SubcommandList), buildList)
}
