package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding the config file.
const (
	EnvBaseURL  = "NOTELY_BASE_URL"
	EnvStateDir = "NOTELY_STATE_DIR"
)

// Config is the on-disk configuration.
//
//	base_url: https://notes.example.com/api/
//	state_dir: /home/me/.local/state/notely
//	public_routes: ["/login"]
//	timeout: 10s
type Config struct {
	BaseURL      string        `yaml:"base_url"`
	StateDir     string        `yaml:"state_dir"`
	PublicRoutes []string      `yaml:"public_routes"`
	Timeout      time.Duration `yaml:"timeout"`

	// Source is the file the config was read from, if any.
	Source string `yaml:"-"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/notely/config.yaml (or the
// platform equivalent).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notely", "config.yaml"), nil
}

// LoadConfig reads the YAML config at path. A missing file yields an empty
// Config.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// ResolveConfig picks the config file to use: explicit wins, then the
// nearest .notely.yaml above workDir, then DefaultConfigPath. Environment
// overrides are applied on top.
func ResolveConfig(explicit, workDir string) (Config, error) {
	path := explicit
	if path == "" {
		if p, err := FindProjectConfig(workDir); err == nil {
			path = p
		}
	}
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	return cfg.WithEnv(), nil
}

// WithEnv returns a copy of c with NOTELY_* environment overrides applied.
func (c Config) WithEnv() Config {
	c.BaseURL = getEnv(EnvBaseURL, c.BaseURL)
	c.StateDir = getEnv(EnvStateDir, c.StateDir)
	return c
}

// Options converts the config into App options. Unset fields keep the
// defaults.
func (c Config) Options() []Option {
	var opts []Option
	if c.BaseURL != "" {
		opts = append(opts, WithBaseURL(c.BaseURL))
	}
	if c.StateDir != "" {
		opts = append(opts, WithStateDir(c.StateDir))
	}
	if len(c.PublicRoutes) > 0 {
		opts = append(opts, WithPublicRoutes(c.PublicRoutes...))
	}
	if c.Timeout > 0 {
		opts = append(opts, WithTimeout(c.Timeout))
	}
	return opts
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
