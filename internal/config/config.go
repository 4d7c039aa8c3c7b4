// Package config handles the catalogctl configuration file: the log level, the connection
// profiles and the environment overrides applied on top of them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Environment variables read by the client.
const (
	EnvClientID      = "CLIENT_ID"
	EnvClientSecret  = "CLIENT_SECRET"
	EnvClientProfile = "CLIENT_PROFILE"
	EnvScriptDir     = "SCRIPT_DIR"
)

const (
	DefaultHost = "localhost"
	DefaultPort = 8181
)

const scriptDirConfigFile = ".polaris.toml"

// Config represents the catalogctl configuration.
type Config struct {
	// LogLevel is a zerolog level name. Empty means info.
	LogLevel string `toml:"log_level"`

	// DefaultProfile is used when neither --profile nor CLIENT_PROFILE names one.
	DefaultProfile string `toml:"default_profile"`

	Profiles map[string]Profile `toml:"profiles"`
}

// Profile is a named set of connection settings.
type Profile struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// LoadFrom loads the configuration from a specific path. A missing file yields an empty config.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config, nil
	}
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, ErrConfigLoad.Err(fmt.Errorf("%s: %w", path, err))
	}
	return &config, nil
}

// Path returns the config file to use. An explicit path wins, then $SCRIPT_DIR/.polaris.toml,
// then ~/.config/catalogctl/config.toml.
func Path(explicit string, getenv func(string) string) string {
	if explicit != "" {
		return explicit
	}
	if dir := getenv(EnvScriptDir); dir != "" {
		return filepath.Join(dir, scriptDirConfigFile)
	}
	return DefaultPath()
}

// DefaultPath returns the XDG-style config path, or config.toml in the working directory when
// the home directory is unknown.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "catalogctl", "config.toml")
	}
	return filepath.Join(".", "config.toml")
}

// Overrides are connection settings given on the command line. Empty fields are unset.
type Overrides struct {
	Profile      string
	Host         string
	Port         string
	ClientID     string
	ClientSecret string
}

// Connection is the effective set of connection settings for one invocation.
type Connection struct {
	Profile      string
	Host         string
	Port         int
	ClientID     string
	ClientSecret string
}

// BaseURL is the root the request paths are appended to.
func (c Connection) BaseURL() string {
	return "http://" + c.Host + ":" + strconv.Itoa(c.Port)
}

func (c Connection) String() string {
	secret := ""
	if c.ClientSecret != "" {
		secret = "****"
	}
	return fmt.Sprintf("profile=%q url=%s client_id=%q client_secret=%q", c.Profile, c.BaseURL(), c.ClientID, secret)
}

// Connection resolves the effective settings. Each field is taken from the overrides, then the
// environment, then the selected profile, then the defaults. The profile is the one named by
// the overrides, CLIENT_PROFILE, or default_profile, in that order; naming a profile that does
// not exist is an error.
func (c *Config) Connection(o Overrides, getenv func(string) string) (Connection, error) {
	name := first(o.Profile, getenv(EnvClientProfile), c.DefaultProfile)
	var p Profile
	if name != "" {
		var ok bool
		if p, ok = c.Profiles[name]; !ok {
			return Connection{}, ErrProfileNotFound.Msg("profile " + strconv.Quote(name) + " not found")
		}
	}

	conn := Connection{
		Profile:      name,
		Host:         first(o.Host, p.Host, DefaultHost),
		Port:         DefaultPort,
		ClientID:     first(o.ClientID, getenv(EnvClientID), p.ClientID),
		ClientSecret: first(o.ClientSecret, getenv(EnvClientSecret), p.ClientSecret),
	}
	if p.Port != 0 {
		conn.Port = p.Port
	}
	if o.Port != "" {
		port, err := strconv.Atoi(o.Port)
		if err != nil || port < 1 || port > 65535 {
			return Connection{}, ErrInvalidPort.Msg("invalid port " + strconv.Quote(o.Port))
		}
		conn.Port = port
	}
	return conn, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
