package catalog

import (
	"context"
	"net/http"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/builderregistry"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/v1/payload"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

const collection = "catalogs"

var (
	createCommand = types.NewCommand(types.FamilyCatalogs, types.SubcommandCreate)
	deleteCommand = types.NewCommand(types.FamilyCatalogs, types.SubcommandDelete)
	getCommand    = types.NewCommand(types.FamilyCatalogs, types.SubcommandGet)
	listCommand   = types.NewCommand(types.FamilyCatalogs, types.SubcommandList)
	updateCommand = types.NewCommand(types.FamilyCatalogs, types.SubcommandUpdate)
)

// NewStorageConfigInfo builds the storage block for the storage type in args. Only the
// credentials of that type are filled in.
func NewStorageConfigInfo(args types.ArgumentSet) StorageConfigInfo {
	st, _ := types.ParseStorageType(args.Value(types.ArgStorageType))
	info := StorageConfigInfo{
		StorageType:      st.APIName(),
		AllowedLocations: args.Values(types.ArgAllowedLocation),
	}
	switch st {
	case types.StorageTypeS3:
		info.S3 = &S3StorageConfig{
			RoleArn:    args.Value(types.ArgRoleArn),
			ExternalID: args.Value(types.ArgExternalID),
			UserArn:    args.Value(types.ArgUserArn),
			Region:     args.Value(types.ArgRegion),
		}
	case types.StorageTypeAzure:
		info.Azure = &AzureStorageConfig{
			TenantID:           args.Value(types.ArgTenantID),
			MultiTenantAppName: args.Value(types.ArgMultiTenantAppName),
			ConsentURL:         args.Value(types.ArgConsentURL),
		}
	case types.StorageTypeGCS:
		if sa := args.Value(types.ArgServiceAccount); sa != "" {
			info.GCS = &GCSStorageConfig{ServiceAccount: sa}
		}
	}
	return info
}

func buildCreate(ctx context.Context, args types.ArgumentSet, props types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	ct, ok := types.ParseCatalogType(args.Value(types.ArgType))
	if !ok {
		ct = types.CatalogTypeInternal
	}
	if ct != types.CatalogTypeExternal && args.Has(types.ArgRemoteURL) {
		return nil, schemaerr.ValidationErrors{schemaerr.ErrForbiddenArgument(types.ArgRemoteURL, "for internal catalogs")}
	}
	c := Catalog{
		Type: ct.APIName(),
		Name: args.Value(types.ArgName),
		Properties: CatalogProperties{
			DefaultBaseLocation: args.Value(types.ArgDefaultBaseLocation),
			Extra:               props,
		},
		StorageConfigInfo: NewStorageConfigInfo(args),
	}
	if ct == types.CatalogTypeExternal {
		c.RemoteURL = args.Value(types.ArgRemoteURL)
	}
	return payload.Build(requestmanager.Request{
		Command: createCommand,
		Target:  requestmanager.TargetManagement,
		Method:  http.MethodPost,
		Path:    []string{collection},
		Body:    &CreateCatalogRequest{Catalog: c},
	}, cfg)
}

func buildDelete(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(requestmanager.Request{
		Command: deleteCommand,
		Target:  requestmanager.TargetManagement,
		Method:  http.MethodDelete,
		Path:    []string{collection, args.Value(types.ArgName)},
	}, cfg)
}

func buildGet(ctx context.Context, args types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(requestmanager.Request{
		Command: getCommand,
		Target:  requestmanager.TargetManagement,
		Method:  http.MethodGet,
		Path:    []string{collection, args.Value(types.ArgName)},
	}, cfg)
}

func buildList(ctx context.Context, _ types.ArgumentSet, _ types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	return payload.Build(requestmanager.Request{
		Command: listCommand,
		Target:  requestmanager.TargetManagement,
		Method:  http.MethodGet,
		Path:    []string{collection},
	}, cfg)
}

// buildUpdate sends the complete new property map. A new default base location replaces the
// property of the same name.
func buildUpdate(ctx context.Context, args types.ArgumentSet, props types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error) {
	props = props.Clone()
	if loc, ok := args.Get(types.ArgDefaultBaseLocation); ok {
		props[DefaultBaseLocationKey] = loc.String()
	}
	return payload.Build(requestmanager.Request{
		Command: updateCommand,
		Target:  requestmanager.TargetManagement,
		Method:  http.MethodPut,
		Path:    []string{collection, args.Value(types.ArgName)},
		Body:    &UpdateCatalogRequest{Properties: props},
	}, cfg)
}

func init() {
	builderregistry.RegisterBuilder(createCommand, buildCreate)
	builderregistry.RegisterBuilder(deleteCommand, buildDelete)
	builderregistry.RegisterBuilder(getCommand, buildGet)
	builderregistry.RegisterBuilder(listCommand, buildList)
	builderregistry.RegisterBuilder(updateCommand, buildUpdate)
}
