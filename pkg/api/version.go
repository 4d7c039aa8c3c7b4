package api

const ApiVersion_1_0 = "1.0"

// ClientVersion is overridden at build time with -ldflags "-X ...api.ClientVersion=...".
var ClientVersion = "dev"

type VersionRsp struct {
	ClientVersion string `json:"client_version"`
	ApiVersion    string `json:"api_version"`
}

func GetVersion() VersionRsp {
	return VersionRsp{
		ClientVersion: ClientVersion,
		ApiVersion:    ApiVersion_1_0,
	}
}
