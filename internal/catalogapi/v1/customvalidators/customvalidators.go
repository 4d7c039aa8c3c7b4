package customvalidators

import (
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/schema/schemavalidator"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// Grant types, as the management API spells them.
const (
	GrantTypeCatalog   = "catalog"
	GrantTypeNamespace = "namespace"
	GrantTypeTable     = "table"
	GrantTypeView      = "view"
)

var grantTypes = []string{GrantTypeCatalog, GrantTypeNamespace, GrantTypeTable, GrantTypeView}

// storageTypeValidator accepts the upper-case wire name of a storage type.
func storageTypeValidator(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	st, ok := types.ParseStorageType(v)
	return ok && st.APIName() == v
}

func catalogTypeValidator(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	ct, ok := types.ParseCatalogType(v)
	return ok && ct.APIName() == v
}

func principalTypeValidator(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	pt, ok := types.ParsePrincipalType(v)
	return ok && strings.ToUpper(string(pt)) == v
}

func grantTypeValidator(fl validator.FieldLevel) bool {
	return slices.Contains(grantTypes, fl.Field().String())
}

// propertyKeysValidator rejects a property map with an empty key.
func propertyKeysValidator(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Map || f.Type().Key().Kind() != reflect.String {
		return false
	}
	for _, k := range f.MapKeys() {
		if k.String() == "" {
			return false
		}
	}
	return true
}

func init() {
	schemavalidator.V().RegisterValidation("storageTypeValidator", storageTypeValidator)
	schemavalidator.V().RegisterValidation("catalogTypeValidator", catalogTypeValidator)
	schemavalidator.V().RegisterValidation("principalTypeValidator", principalTypeValidator)
	schemavalidator.V().RegisterValidation("grantTypeValidator", grantTypeValidator)
	schemavalidator.V().RegisterValidation("propertyKeysValidator", propertyKeysValidator)
}
