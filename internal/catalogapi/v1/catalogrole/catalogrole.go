package catalogrole

import "github.com/mugiliam/hatchcatalogctl/pkg/types"

type CatalogRole struct {
	Name       string            `json:"name" arg:"name" validate:"required,notBlankValidator"`
	Properties types.PropertyMap `json:"properties,omitempty" arg:"property" validate:"propertyKeysValidator"`
}

type CreateCatalogRoleRequest struct {
	CatalogRole CatalogRole `json:"catalogRole" validate:"required"`
}

type UpdateCatalogRoleRequest struct {
	Properties types.PropertyMap `json:"properties" arg:"set_property" validate:"propertyKeysValidator"`
}

type GrantCatalogRoleRequest struct {
	CatalogRole CatalogRole `json:"catalogRole" validate:"required"`
}
