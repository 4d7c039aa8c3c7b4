package types

import (
	"slices"
	"sort"
)

// Argument names. These are the stable snake_case identifiers, independent of flag spelling.
const (
	ArgName                = "name"
	ArgType                = "type"
	ArgRemoteURL           = "remote_url"
	ArgDefaultBaseLocation = "default_base_location"
	ArgStorageType         = "storage_type"
	ArgAllowedLocation     = "allowed_location"
	ArgRoleArn             = "role_arn"
	ArgExternalID          = "external_id"
	ArgUserArn             = "user_arn"
	ArgRegion              = "region"
	ArgTenantID            = "tenant_id"
	ArgMultiTenantAppName  = "multi_tenant_app_name"
	ArgConsentURL          = "consent_url"
	ArgServiceAccount      = "service_account"
	ArgCatalogRole         = "catalog_role"
	ArgCatalog             = "catalog"
	ArgPrincipal           = "principal"
	ArgClientID            = "client_id"
	ArgPrincipalRole       = "principal_role"
	ArgProperty            = "property"
	ArgSetProperty         = "set_property"
	ArgRemoveProperty      = "remove_property"
	ArgPrivilege           = "privilege"
	ArgNamespace           = "namespace"
	ArgTable               = "table"
	ArgView                = "view"
	ArgCascade             = "cascade"
	ArgClientSecret        = "client_secret"
	ArgAccessToken         = "access_token"
	ArgHost                = "host"
	ArgPort                = "port"
	ArgBaseURL             = "base_url"
	ArgParent              = "parent"
	ArgLocation            = "location"
	ArgProfile             = "profile"
)

// ArgumentValue is a single string or a list of strings.
type ArgumentValue struct {
	values []string
	list   bool
}

func StringValue(v string) ArgumentValue {
	return ArgumentValue{values: []string{v}}
}

func ListValue(v ...string) ArgumentValue {
	return ArgumentValue{values: slices.Clone(v), list: true}
}

// BoolValue is how switches are represented: present means on.
func BoolValue() ArgumentValue {
	return StringValue("true")
}

func (a ArgumentValue) IsList() bool {
	return a.list
}

// String returns the scalar value, or the first element of a list.
func (a ArgumentValue) String() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

func (a ArgumentValue) Strings() []string {
	return slices.Clone(a.values)
}

func (a ArgumentValue) Equal(b ArgumentValue) bool {
	return a.list == b.list && slices.Equal(a.values, b.values)
}

// ArgumentSet maps argument names to supplied values. A missing key means the argument was not
// supplied, which is different from an empty string.
type ArgumentSet map[string]ArgumentValue

func (as ArgumentSet) Has(name string) bool {
	_, ok := as[name]
	return ok
}

func (as ArgumentSet) Get(name string) (ArgumentValue, bool) {
	v, ok := as[name]
	return v, ok
}

// Value returns the scalar value of name, or "" when absent.
func (as ArgumentSet) Value(name string) string {
	return as[name].String()
}

// Values returns the list value of name, or nil when absent.
func (as ArgumentSet) Values(name string) []string {
	v, ok := as[name]
	if !ok {
		return nil
	}
	return v.Strings()
}

// Names returns the supplied argument names in sorted order.
func (as ArgumentSet) Names() []string {
	names := make([]string, 0, len(as))
	for n := range as {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (as ArgumentSet) Clone() ArgumentSet {
	c := make(ArgumentSet, len(as))
	for k, v := range as {
		c[k] = ArgumentValue{values: slices.Clone(v.values), list: v.list}
	}
	return c
}
