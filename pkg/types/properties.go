package types

import "maps"

// PropertyMap is the free-form key/value metadata of a catalog, principal or role.
type PropertyMap map[string]string

func (p PropertyMap) Clone() PropertyMap {
	if p == nil {
		return PropertyMap{}
	}
	return maps.Clone(p)
}

func (p PropertyMap) Equal(o PropertyMap) bool {
	return maps.Equal(p, o)
}
