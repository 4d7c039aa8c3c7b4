package catalog

import (
	"encoding/json"

	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// DefaultBaseLocationKey is the catalog property holding the default base location.
const DefaultBaseLocationKey = "default-base-location"

type CreateCatalogRequest struct {
	Catalog Catalog `json:"catalog" validate:"required"`
}

type Catalog struct {
	Type              string            `json:"type" arg:"type" validate:"required,catalogTypeValidator"`
	Name              string            `json:"name" arg:"name" validate:"required,notBlankValidator"`
	RemoteURL         string            `json:"remoteUrl,omitempty" arg:"remote_url" validate:"required_if=Type EXTERNAL"`
	Properties        CatalogProperties `json:"properties"`
	StorageConfigInfo StorageConfigInfo `json:"storageConfigInfo"`
}

// CatalogProperties is serialized as a flat map: the default base location is one of the
// properties.
type CatalogProperties struct {
	DefaultBaseLocation string            `arg:"default_base_location" validate:"required,uri"`
	Extra               types.PropertyMap `arg:"property" validate:"propertyKeysValidator"`
}

func (p CatalogProperties) Map() types.PropertyMap {
	m := p.Extra.Clone()
	if p.DefaultBaseLocation != "" {
		m[DefaultBaseLocationKey] = p.DefaultBaseLocation
	}
	return m
}

func (p CatalogProperties) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string(p.Map()))
}

// StorageConfigInfo carries the credentials of exactly one storage type, nested under that
// type's key.
type StorageConfigInfo struct {
	StorageType      string              `json:"storageType" arg:"storage_type" validate:"required,storageTypeValidator"`
	AllowedLocations []string            `json:"allowedLocations,omitempty" arg:"allowed_location" validate:"omitempty,dive,uri"`
	S3               *S3StorageConfig    `json:"s3,omitempty"`
	Azure            *AzureStorageConfig `json:"azure,omitempty"`
	GCS              *GCSStorageConfig   `json:"gcs,omitempty"`
}

type S3StorageConfig struct {
	RoleArn    string `json:"roleArn" arg:"role_arn" validate:"required,arnValidator"`
	ExternalID string `json:"externalId,omitempty" arg:"external_id"`
	UserArn    string `json:"userArn,omitempty" arg:"user_arn" validate:"omitempty,arnValidator"`
	Region     string `json:"region,omitempty" arg:"region"`
}

type AzureStorageConfig struct {
	TenantID           string `json:"tenantId" arg:"tenant_id" validate:"required,notBlankValidator"`
	MultiTenantAppName string `json:"multiTenantAppName,omitempty" arg:"multi_tenant_app_name"`
	ConsentURL         string `json:"consentUrl,omitempty" arg:"consent_url" validate:"omitempty,url"`
}

type GCSStorageConfig struct {
	ServiceAccount string `json:"gcsServiceAccount,omitempty" arg:"service_account" validate:"omitempty,email"`
}

type UpdateCatalogRequest struct {
	Properties types.PropertyMap `json:"properties" arg:"set_property" validate:"propertyKeysValidator"`
}
