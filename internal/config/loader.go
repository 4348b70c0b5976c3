package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// envOverrides lists the MOAI_STARTER_* variables. Empty strings and unset
// booleans leave the file or default value in place.
type envOverrides struct {
	LogLevel  string `envconfig:"LOG_LEVEL"`
	LogFormat string `envconfig:"LOG_FORMAT"`
	Catalog   string `envconfig:"CATALOG"`
	NoArchive *bool  `envconfig:"NO_ARCHIVE"`
	NoColor   *bool  `envconfig:"NO_COLOR"`
	GroupID   string `envconfig:"GROUP_ID"`
	Profile   string `envconfig:"PROFILE"`
}

// DefaultPath returns the config file location below the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, DefaultFileName), nil
}

// Load reads path over the defaults and then applies environment
// overrides. A missing file is not an error. An empty path skips the file.
// The returned flag reports whether the file was found.
func Load(path string) (*Config, bool, error) {
	cfg := NewDefaultConfig()

	loaded := false
	if path != "" {
		var err error
		loaded, err = loadYAMLFile(filepath.Dir(path), filepath.Base(path), cfg)
		if err != nil {
			return nil, false, err
		}
		if !loaded {
			slog.Debug("config file not found, using defaults", "path", path)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, loaded, err
	}
	return cfg, loaded, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}

	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
	if env.Catalog != "" {
		cfg.Catalog.Dir = env.Catalog
	}
	if env.GroupID != "" {
		cfg.Defaults.GroupID = env.GroupID
	}
	if env.Profile != "" {
		cfg.Defaults.Profile = env.Profile
	}
	if env.NoArchive != nil {
		cfg.Output.Archive = !*env.NoArchive
	}
	if env.NoColor != nil {
		cfg.UI.NoColor = *env.NoColor
	}
	return nil
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
