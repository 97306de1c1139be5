package udever

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/udevtools/udever/internal/log"
)

// Config holds the tunable defaults for a run. All fields have working
// defaults; a missing config file is not an error.
type Config struct {
	RulesDir      string        `yaml:"rules_dir"`
	DefaultPolicy Policy        `yaml:"default_policy"`
	VerifyTimeout time.Duration `yaml:"verify_timeout"`
	OSReleasePath string        `yaml:"os_release_path"`
}

// UnmarshalYAML decodes the config, accepting verify_timeout in Go duration
// syntax ("2s", "500ms").
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		RulesDir      string `yaml:"rules_dir"`
		DefaultPolicy string `yaml:"default_policy"`
		VerifyTimeout string `yaml:"verify_timeout"`
		OSReleasePath string `yaml:"os_release_path"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.RulesDir != "" {
		c.RulesDir = raw.RulesDir
	}
	if raw.DefaultPolicy != "" {
		c.DefaultPolicy = Policy(raw.DefaultPolicy)
	}
	if raw.OSReleasePath != "" {
		c.OSReleasePath = raw.OSReleasePath
	}
	if raw.VerifyTimeout != "" {
		d, err := time.ParseDuration(raw.VerifyTimeout)
		if err != nil {
			return fmt.Errorf("verify_timeout: %w", err)
		}
		c.VerifyTimeout = d
	}
	return nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		RulesDir:      DefaultRulesDir,
		DefaultPolicy: PolicyUserOnly,
		VerifyTimeout: defaultVerifyTimeout,
		OSReleasePath: DefaultOSReleasePath,
	}
}

// LoadConfig loads configuration from the given path, or from the XDG config
// location when path is empty. Absence of a config file falls back to
// defaults rather than erroring; an explicitly named file that cannot be
// parsed is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(xdg.ConfigHome, "udever", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			log.Debugf("no config file at %s, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.DefaultPolicy != "" {
		if _, err := ParsePolicy(string(cfg.DefaultPolicy)); err != nil {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if cfg.RulesDir == "" {
		cfg.RulesDir = DefaultRulesDir
	}
	if cfg.VerifyTimeout <= 0 {
		cfg.VerifyTimeout = defaultVerifyTimeout
	}
	if cfg.OSReleasePath == "" {
		cfg.OSReleasePath = DefaultOSReleasePath
	}

	return cfg, nil
}
