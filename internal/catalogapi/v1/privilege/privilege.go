package privilege

// Grant is a privilege on one securable. Namespace is present for every level below catalog.
type Grant struct {
	Type      string   `json:"type" validate:"required,grantTypeValidator"`
	Namespace []string `json:"namespace,omitempty" arg:"namespace" validate:"omitempty,namespaceValidator"`
	TableName string   `json:"tableName,omitempty" arg:"table" validate:"required_if=Type table"`
	ViewName  string   `json:"viewName,omitempty" arg:"view" validate:"required_if=Type view"`
	Privilege string   `json:"privilege" arg:"privilege" validate:"required"`
}

// GrantRequest is the body of both grant and revoke requests.
type GrantRequest struct {
	Grant Grant `json:"grant" validate:"required"`
}
