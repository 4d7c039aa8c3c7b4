package cli

import (
	"context"
	"os"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/apierrors"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"
)

// snapshotFetcher reads current properties from a YAML or JSON file. The file is either a flat
// map or a resource document with a "properties" object, such as the output of a get command.
type snapshotFetcher struct {
	path string
}

func (f snapshotFetcher) FetchProperties(ctx context.Context, cmd types.Command, _ types.ArgumentSet) (types.PropertyMap, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, apierrors.ErrPropertyFetch.Err(err)
	}
	doc, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, apierrors.ErrPropertyFetch.Err(err)
	}
	root := gjson.ParseBytes(doc)
	if p := root.Get("properties"); p.IsObject() {
		root = p
	}
	if !root.IsObject() {
		return nil, apierrors.ErrPropertyFetch.Msg("property snapshot " + f.path + " is not a map")
	}
	props := make(types.PropertyMap)
	root.ForEach(func(k, v gjson.Result) bool {
		props[k.String()] = v.String()
		return true
	})
	log.Ctx(ctx).Debug().Str("command", cmd.String()).Int("properties", len(props)).Msg("loaded property snapshot")
	return props, nil
}
