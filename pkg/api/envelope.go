package api

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// RequestEnvelope is what the dry-run transport emits for a built request.
type RequestEnvelope struct {
	Version     string          `json:"version"`
	RequestId   string          `json:"requestId,omitempty"`
	Command     types.Command   `json:"command"`
	Endpoint    string          `json:"endpoint,omitempty"`
	Profile     string          `json:"profile,omitempty"`
	Request     json.RawMessage `json:"request"`
	Fingerprint string          `json:"fingerprint"`
}

func NewRequestEnvelope(requestId string, p *requestmanager.RequestPayload) (*RequestEnvelope, error) {
	req, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	e := &RequestEnvelope{
		Version:   ApiVersion_1_0,
		RequestId: requestId,
		Command:   p.Command(),
		Request:   req,
	}
	e.Fingerprint = e.GetHash()
	return e, nil
}

// GetHash returns the hex encoded SHA-512 hash of the request. The request ID, endpoint and profile
// are not part of it, so the same request always has the same fingerprint.
func (e *RequestEnvelope) GetHash() string {
	sum := sha512.Sum512(e.Request)
	return hex.EncodeToString(sum[:])
}
