package principal

import "github.com/mugiliam/hatchcatalogctl/pkg/types"

type CreatePrincipalRequest struct {
	Principal Principal `json:"principal" validate:"required"`
	// CredentialRotationRequired asks the service to force a credential rotation on first use.
	CredentialRotationRequired bool `json:"credentialRotationRequired"`
}

type Principal struct {
	Name       string            `json:"name" arg:"name" validate:"required,notBlankValidator"`
	Type       string            `json:"type" arg:"type" validate:"required,principalTypeValidator"`
	Properties types.PropertyMap `json:"properties,omitempty" arg:"property" validate:"propertyKeysValidator"`
}

type UpdatePrincipalRequest struct {
	Properties types.PropertyMap `json:"properties" arg:"set_property" validate:"propertyKeysValidator"`
}
