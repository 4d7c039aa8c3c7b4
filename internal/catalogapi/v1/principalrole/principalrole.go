package principalrole

import "github.com/mugiliam/hatchcatalogctl/pkg/types"

type PrincipalRole struct {
	Name       string            `json:"name" arg:"name" validate:"required,notBlankValidator"`
	Properties types.PropertyMap `json:"properties,omitempty" arg:"property" validate:"propertyKeysValidator"`
}

type CreatePrincipalRoleRequest struct {
	PrincipalRole PrincipalRole `json:"principalRole" validate:"required"`
}

type UpdatePrincipalRoleRequest struct {
	Properties types.PropertyMap `json:"properties" arg:"set_property" validate:"propertyKeysValidator"`
}

// GrantPrincipalRoleRequest assigns a principal role to a principal.
type GrantPrincipalRoleRequest struct {
	PrincipalRole PrincipalRole `json:"principalRole" validate:"required"`
}
