package config

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/mugiliam/hatchcatalogctl/internal/catalogapi/requestmanager"
	"github.com/rs/zerolog/log"
)

// ProfileView is what get and list report for a profile. The secret is never included.
type ProfileView struct {
	Name      string `json:"name"`
	Host      string `json:"host,omitempty"`
	Port      int    `json:"port,omitempty"`
	ClientID  string `json:"clientId,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

type profileBody struct {
	Name         string `json:"name"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	Host         string `json:"host"`
	Port         int    `json:"port"`
}

// ProfileStore applies profile requests to the profiles of a config file.
type ProfileStore struct {
	path string
	cfg  *Config
}

// NewProfileStore returns a store that edits cfg and saves it to path after every change.
func NewProfileStore(path string, cfg *Config) *ProfileStore {
	if cfg == nil {
		cfg = &Config{}
	}
	return &ProfileStore{path: path, cfg: cfg}
}

// Apply executes a profiles request. get returns a ProfileView, list a []ProfileView, and the
// mutating requests return nil.
func (s *ProfileStore) Apply(ctx context.Context, p *requestmanager.RequestPayload) (any, error) {
	if p.Target() != requestmanager.TargetProfileStore {
		return nil, ErrProfileRequest.Msg("request is not addressed to the profile store")
	}
	path := p.Path()
	name := ""
	if len(path) > 1 {
		name = path[len(path)-1]
	}

	var body profileBody
	if p.HasBody() {
		if err := json.Unmarshal(p.Body(), &body); err != nil {
			return nil, ErrProfileRequest.Err(err)
		}
	}

	log.Ctx(ctx).Debug().Str("method", p.Method()).Str("profile", name).Msg("applying profile request")
	switch {
	case p.Method() == http.MethodGet && name == "":
		return s.list(), nil
	case p.Method() == http.MethodGet:
		return s.get(name)
	case p.Method() == http.MethodPost:
		return nil, s.create(name, body)
	case p.Method() == http.MethodPut:
		return nil, s.update(name, body)
	case p.Method() == http.MethodDelete:
		return nil, s.delete(name)
	}
	return nil, ErrProfileRequest.Msg("unsupported method " + p.Method())
}

func (s *ProfileStore) list() []ProfileView {
	views := make([]ProfileView, 0, len(s.cfg.Profiles))
	for name, p := range s.cfg.Profiles {
		views = append(views, s.view(name, p))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views
}

func (s *ProfileStore) get(name string) (ProfileView, error) {
	p, ok := s.cfg.Profiles[name]
	if !ok {
		return ProfileView{}, notFound(name)
	}
	return s.view(name, p), nil
}

func (s *ProfileStore) view(name string, p Profile) ProfileView {
	return ProfileView{
		Name:      name,
		Host:      p.Host,
		Port:      p.Port,
		ClientID:  p.ClientID,
		IsDefault: name == s.cfg.DefaultProfile,
	}
}

func (s *ProfileStore) create(name string, b profileBody) error {
	if _, ok := s.cfg.Profiles[name]; ok {
		return ErrProfileExists.Msg("profile " + strconv.Quote(name) + " already exists")
	}
	if s.cfg.Profiles == nil {
		s.cfg.Profiles = make(map[string]Profile)
	}
	s.cfg.Profiles[name] = Profile{
		Host:         b.Host,
		Port:         b.Port,
		ClientID:     b.ClientID,
		ClientSecret: b.ClientSecret,
	}
	if s.cfg.DefaultProfile == "" {
		s.cfg.DefaultProfile = name
	}
	return SaveTo(s.path, s.cfg)
}

func (s *ProfileStore) update(name string, b profileBody) error {
	p, ok := s.cfg.Profiles[name]
	if !ok {
		return notFound(name)
	}
	if b.Host != "" {
		p.Host = b.Host
	}
	if b.Port != 0 {
		p.Port = b.Port
	}
	if b.ClientID != "" {
		p.ClientID = b.ClientID
	}
	if b.ClientSecret != "" {
		p.ClientSecret = b.ClientSecret
	}
	s.cfg.Profiles[name] = p
	return SaveTo(s.path, s.cfg)
}

func (s *ProfileStore) delete(name string) error {
	if _, ok := s.cfg.Profiles[name]; !ok {
		return notFound(name)
	}
	delete(s.cfg.Profiles, name)
	if s.cfg.DefaultProfile == name {
		s.cfg.DefaultProfile = ""
	}
	return SaveTo(s.path, s.cfg)
}

func notFound(name string) error {
	return ErrProfileNotFound.Msg("profile " + strconv.Quote(name) + " not found")
}
