// Package config handles loading and parsing of craftcon configuration files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/craftcon/craftcon/internal/cerrors"
)

// SupportedConfigNames contains supported configuration file names
// (in order of preference)
var SupportedConfigNames = []string{
	"craftcon.yml",
	"craftcon.yaml",
	"craftcon.toml",
	"craftcon.json",
}

//go:embed defaults.yml
var defaultsYAML []byte

// Config holds the connection and shell settings for one session.
type Config struct {
	// Address is the server's RCON endpoint (host:port)
	Address string `koanf:"address"`
	// Password is the RCON password. Prefer PasswordEnv in config files.
	Password string `koanf:"password"`
	// PasswordEnv names an environment variable holding the password
	PasswordEnv string `koanf:"password_env"`
	// HistoryFile is where the shell persists input history
	HistoryFile string `koanf:"history_file"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `koanf:"log_level"`
	// Timeout bounds each network round-trip
	Timeout time.Duration `koanf:"timeout"`
}

// ResolvePassword returns the configured password, consulting PasswordEnv
// when no literal password is set.
func (c *Config) ResolvePassword() string {
	if c.Password != "" {
		return c.Password
	}
	if c.PasswordEnv != "" {
		return os.Getenv(c.PasswordEnv)
	}
	return ""
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	cfg, err := unmarshal(koanfWithDefaults())
	if err != nil {
		// the embedded defaults are covered by tests
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}

// Load reads a configuration file, layered over the built-in defaults.
// The format is chosen by file extension.
func Load(path string) (*Config, error) {
	k := koanfWithDefaults()

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, cerrors.NewConfigError(path, "failed to load config", err)
	}
	cfg, err := unmarshal(k)
	if err != nil {
		return nil, cerrors.NewConfigError(path, "failed to unmarshal config", err)
	}
	return cfg, nil
}

// Find returns the first config file present: the supported names in the
// current directory, then under the user config dir (XDG on Linux). An empty
// string means no config file exists, which is not an error.
func Find() string {
	for _, name := range SupportedConfigNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range SupportedConfigNames {
		path := filepath.Join(configDir, "craftcon", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func koanfWithDefaults() *koanf.Koanf {
	k := koanf.New(".")
	// the rawbytes load of compiled-in defaults cannot fail at runtime
	_ = k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser())
	return k
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, cerrors.NewConfigError(path, fmt.Sprintf("unsupported config format: %s", filepath.Ext(path)), nil)
	}
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
