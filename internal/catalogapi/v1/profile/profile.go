package profile

// Profile is a named set of connection settings kept in the local profile store.
type Profile struct {
	Name         string `json:"name" arg:"name" validate:"required,notBlankValidator"`
	ClientID     string `json:"clientId" arg:"client_id" validate:"required,notBlankValidator"`
	ClientSecret string `json:"clientSecret" arg:"client_secret" validate:"required,notBlankValidator"`
	Host         string `json:"host,omitempty" arg:"host" validate:"omitempty,hostname_rfc1123|ip"`
	Port         int    `json:"port,omitempty" arg:"port" validate:"omitempty,portValidator"`
}

// ProfileUpdate changes the fields it carries and leaves the others as stored.
type ProfileUpdate struct {
	Name         string `json:"name" arg:"name" validate:"required,notBlankValidator"`
	ClientID     string `json:"clientId,omitempty" arg:"client_id"`
	ClientSecret string `json:"clientSecret,omitempty" arg:"client_secret"`
	Host         string `json:"host,omitempty" arg:"host" validate:"omitempty,hostname_rfc1123|ip"`
	Port         int    `json:"port,omitempty" arg:"port" validate:"omitempty,portValidator"`
}
