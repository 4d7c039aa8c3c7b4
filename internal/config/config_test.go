package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(kv map[string]string) func(string) string {
	return func(k string) string { return kv[k] }
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"
default_profile = "dev"

[profiles.dev]
host = "catalog.dev"
port = 9000
client_id = "dev-id"
client_secret = "dev-secret"
`), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "dev", cfg.DefaultProfile)
	assert.Equal(t, Profile{Host: "catalog.dev", Port: 9000, ClientID: "dev-id", ClientSecret: "dev-secret"}, cfg.Profiles["dev"])
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Profiles)
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = "), 0o600))
	_, err := LoadFrom(path)
	assert.ErrorIs(t, err, ErrConfigLoad)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/etc/catalogctl.toml", Path("/etc/catalogctl.toml", env(map[string]string{EnvScriptDir: "/opt/polaris"})))
	assert.Equal(t, filepath.Join("/opt/polaris", ".polaris.toml"), Path("", env(map[string]string{EnvScriptDir: "/opt/polaris"})))
	assert.Equal(t, DefaultPath(), Path("", env(nil)))
}

func TestConnection(t *testing.T) {
	cfg := &Config{
		DefaultProfile: "dev",
		Profiles: map[string]Profile{
			"dev":  {Host: "catalog.dev", Port: 9000, ClientID: "dev-id", ClientSecret: "dev-secret"},
			"prod": {Host: "catalog.prod", ClientID: "prod-id", ClientSecret: "prod-secret"},
		},
	}

	tests := []struct {
		name      string
		cfg       *Config
		overrides Overrides
		env       map[string]string
		want      Connection
		wantErr   error
	}{
		{
			name: "defaults without profiles",
			cfg:  &Config{},
			want: Connection{Host: DefaultHost, Port: DefaultPort},
		},
		{
			name: "default profile",
			want: Connection{Profile: "dev", Host: "catalog.dev", Port: 9000, ClientID: "dev-id", ClientSecret: "dev-secret"},
		},
		{
			name: "profile from environment",
			env:  map[string]string{EnvClientProfile: "prod"},
			want: Connection{Profile: "prod", Host: "catalog.prod", Port: DefaultPort, ClientID: "prod-id", ClientSecret: "prod-secret"},
		},
		{
			name: "environment credentials beat the profile",
			env:  map[string]string{EnvClientID: "env-id", EnvClientSecret: "env-secret"},
			want: Connection{Profile: "dev", Host: "catalog.dev", Port: 9000, ClientID: "env-id", ClientSecret: "env-secret"},
		},
		{
			name:      "flags beat everything",
			overrides: Overrides{Profile: "prod", Host: "localhost", Port: "8282", ClientID: "flag-id"},
			env:       map[string]string{EnvClientProfile: "dev", EnvClientID: "env-id"},
			want:      Connection{Profile: "prod", Host: "localhost", Port: 8282, ClientID: "flag-id", ClientSecret: "prod-secret"},
		},
		{
			name:      "unknown profile",
			overrides: Overrides{Profile: "staging"},
			wantErr:   ErrProfileNotFound,
		},
		{
			name:      "bad port",
			overrides: Overrides{Port: "http"},
			wantErr:   ErrInvalidPort,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			if tt.cfg != nil {
				c = tt.cfg
			}
			got, err := c.Connection(tt.overrides, env(tt.env))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnection_String(t *testing.T) {
	c := Connection{Profile: "dev", Host: "localhost", Port: 8181, ClientID: "id", ClientSecret: "s3cr3t"}
	assert.Equal(t, "http://localhost:8181", c.BaseURL())
	assert.NotContains(t, c.String(), "s3cr3t")
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := &Config{
		LogLevel:       "warn",
		DefaultProfile: "dev",
		Profiles:       map[string]Profile{"dev": {Host: "localhost", Port: 8181, ClientID: "id", ClientSecret: "secret"}},
	}
	require.NoError(t, SaveTo(path, cfg))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	cfg.DefaultProfile = ""
	require.NoError(t, SaveTo(path, cfg))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files are left behind")
	loaded, err = LoadFrom(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.DefaultProfile)
}

func TestSaveTo_EmptyPath(t *testing.T) {
	assert.ErrorIs(t, SaveTo(" ", &Config{}), ErrConfigSave)
}
