package namespace

import "github.com/mugiliam/hatchcatalogctl/pkg/types"

// LocationKey is the namespace property holding its storage location.
const LocationKey = "location"

type CreateNamespaceRequest struct {
	Namespace  []string          `json:"namespace" arg:"namespace" validate:"required,namespaceValidator"`
	Properties types.PropertyMap `json:"properties,omitempty" arg:"property" validate:"propertyKeysValidator"`
}
