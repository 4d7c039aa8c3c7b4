package requestmanager

import (
	"bytes"
	"encoding/json"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/mugiliam/hatchcatalogctl/pkg/types"
)

// Target is the service a request is addressed to.
type Target string

const (
	TargetManagement   Target = "management"
	TargetCatalog      Target = "catalog"
	TargetProfileStore Target = "profiles"
)

// Base paths of the targets.
const (
	ManagementBasePath = "/api/management/v1"
	CatalogBasePath    = "/api/catalog/v1"
)

func (t Target) BasePath() string {
	switch t {
	case TargetManagement:
		return ManagementBasePath
	case TargetCatalog:
		return CatalogBasePath
	}
	return ""
}

// Request is the draft a builder fills in. NewRequestPayload freezes it.
type Request struct {
	Command types.Command
	Target  Target
	Method  string
	Path    []string
	Query   map[string]string
	Body    any
}

// RequestPayload is a fully built request. It cannot be changed once built: every accessor
// returns a copy.
type RequestPayload struct {
	command types.Command
	target  Target
	method  string
	path    []string
	query   map[string]string
	body    []byte
}

// NewRequestPayload serializes r.Body to canonical JSON and freezes the request. A nil body
// produces a request without one.
func NewRequestPayload(r Request) (*RequestPayload, error) {
	p := &RequestPayload{
		command: r.Command,
		target:  r.Target,
		method:  r.Method,
		path:    slices.Clone(r.Path),
	}
	if len(r.Query) > 0 {
		p.query = maps.Clone(r.Query)
	}
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, err
		}
		p.body = b
	}
	return p, nil
}

func (p *RequestPayload) Command() types.Command {
	return p.command
}

func (p *RequestPayload) Target() Target {
	return p.target
}

func (p *RequestPayload) Method() string {
	return p.method
}

// Path returns the unescaped path segments below the target's base path.
func (p *RequestPayload) Path() []string {
	return slices.Clone(p.path)
}

func (p *RequestPayload) Query() map[string]string {
	return maps.Clone(p.query)
}

func (p *RequestPayload) Body() []byte {
	return bytes.Clone(p.body)
}

func (p *RequestPayload) HasBody() bool {
	return len(p.body) > 0
}

// URLPath renders the base path and escaped segments, followed by the encoded query.
func (p *RequestPayload) URLPath() string {
	var b strings.Builder
	b.WriteString(p.target.BasePath())
	for _, s := range p.path {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	if len(p.query) > 0 {
		q := url.Values{}
		for k, v := range p.query {
			q.Set(k, v)
		}
		b.WriteByte('?')
		b.WriteString(q.Encode())
	}
	return b.String()
}

type payloadJSON struct {
	Command types.Command     `json:"command"`
	Target  Target            `json:"target"`
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Query   map[string]string `json:"query,omitempty"`
	Body    json.RawMessage   `json:"body,omitempty"`
}

func (p *RequestPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(payloadJSON{
		Command: p.command,
		Target:  p.target,
		Method:  p.method,
		Path:    p.URLPath(),
		Query:   p.query,
		Body:    p.body,
	})
}
