package types

import "strings"

type ResourceFamily string

const (
	FamilyCatalogs       ResourceFamily = "catalogs"
	FamilyPrincipals     ResourceFamily = "principals"
	FamilyPrincipalRoles ResourceFamily = "principal-roles"
	FamilyCatalogRoles   ResourceFamily = "catalog-roles"
	FamilyPrivileges     ResourceFamily = "privileges"
	FamilyNamespaces     ResourceFamily = "namespaces"
	FamilyProfiles       ResourceFamily = "profiles"
)

type Subcommand string

const (
	SubcommandCreate            Subcommand = "create"
	SubcommandDelete            Subcommand = "delete"
	SubcommandGet               Subcommand = "get"
	SubcommandList              Subcommand = "list"
	SubcommandUpdate            Subcommand = "update"
	SubcommandRotateCredentials Subcommand = "rotate-credentials"
	SubcommandCatalog           Subcommand = "catalog"
	SubcommandNamespace         Subcommand = "namespace"
	SubcommandTable             Subcommand = "table"
	SubcommandView              Subcommand = "view"
	SubcommandGrant             Subcommand = "grant"
	SubcommandRevoke            Subcommand = "revoke"
)

type Action string

const (
	ActionNone   Action = ""
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

// StorageType selects the credential block of a catalog's storage configuration.
type StorageType string

const (
	StorageTypeS3    StorageType = "s3"
	StorageTypeAzure StorageType = "azure"
	StorageTypeGCS   StorageType = "gcs"
	StorageTypeFile  StorageType = "file"
)

var StorageTypes = []StorageType{StorageTypeS3, StorageTypeAzure, StorageTypeGCS, StorageTypeFile}

// ParseStorageType is case-insensitive.
func ParseStorageType(s string) (StorageType, bool) {
	for _, st := range StorageTypes {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// APIName is the upper-case form used on the wire.
func (st StorageType) APIName() string {
	return strings.ToUpper(string(st))
}

type CatalogType string

const (
	CatalogTypeInternal CatalogType = "internal"
	CatalogTypeExternal CatalogType = "external"
)

var CatalogTypes = []CatalogType{CatalogTypeInternal, CatalogTypeExternal}

func ParseCatalogType(s string) (CatalogType, bool) {
	for _, ct := range CatalogTypes {
		if strings.EqualFold(s, string(ct)) {
			return ct, true
		}
	}
	return "", false
}

func (ct CatalogType) APIName() string {
	return strings.ToUpper(string(ct))
}

type PrincipalType string

const PrincipalTypeService PrincipalType = "service"

var PrincipalTypes = []PrincipalType{PrincipalTypeService}

func ParsePrincipalType(s string) (PrincipalType, bool) {
	for _, pt := range PrincipalTypes {
		if strings.EqualFold(s, string(pt)) {
			return pt, true
		}
	}
	return "", false
}

// Securable is the level a privilege is granted on.
type Securable string

const (
	SecurableCatalog   Securable = "catalog"
	SecurableNamespace Securable = "namespace"
	SecurableTable     Securable = "table"
	SecurableView      Securable = "view"
)
