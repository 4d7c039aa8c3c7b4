package builderregistry

import (
	"context"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// Builder turns validated arguments and resolved properties into a request. Violations are
// returned as schemaerr.ValidationErrors; any other error is a failure to build.
type Builder func(ctx context.Context, args types.ArgumentSet, props types.PropertyMap, cfg *requestmanager.OptionsConfig) (*requestmanager.RequestPayload, error)

var registry = make(map[types.Command]Builder)

func RegisterBuilder(cmd types.Command, b Builder) {
	registry[cmd] = b
}

func GetBuilder(cmd types.Command) Builder {
	return registry[cmd]
}

func BuilderExists(cmd types.Command) bool {
	_, exists := registry[cmd]
	return exists
}
