// Package properties computes property maps from key=value tokens.
package properties

import (
	"strings"

	schemaerr "github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/errors"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// Pair is one parsed key=value token.
type Pair struct {
	Key   string
	Value string
}

// ParsePairs splits each token on its first '='. Tokens without one, or with an empty key, are
// reported against field and skipped.
func ParsePairs(field string, tokens []string) ([]Pair, schemaerr.ValidationErrors) {
	var (
		pairs []Pair
		ves   schemaerr.ValidationErrors
	)
	for _, tok := range tokens {
		k, v, ok := strings.Cut(tok, "=")
		if !ok || k == "" {
			ves = append(ves, schemaerr.ErrMalformedProperty(field, tok))
			continue
		}
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return pairs, ves
}

// Parse builds a property map for a create command. Later tokens win over earlier ones.
func Parse(field string, tokens []string) (types.PropertyMap, schemaerr.ValidationErrors) {
	pairs, ves := ParsePairs(field, tokens)
	if ves != nil {
		return nil, ves
	}
	props := make(types.PropertyMap, len(pairs))
	for _, p := range pairs {
		props[p.Key] = p.Value
	}
	return props, nil
}

// Resolve applies setPairs and then removeKeys to a copy of existing. Every set is applied before
// any removal, so a key that is both set and removed ends up removed. Removing an absent key is a
// no-op. existing is not modified.
func Resolve(existing types.PropertyMap, setPairs, removeKeys []string) (types.PropertyMap, schemaerr.ValidationErrors) {
	pairs, ves := ParsePairs(types.ArgSetProperty, setPairs)
	if ves != nil {
		return nil, ves
	}
	props := existing.Clone()
	for _, p := range pairs {
		props[p.Key] = p.Value
	}
	for _, k := range removeKeys {
		delete(props, k)
	}
	return props, nil
}
