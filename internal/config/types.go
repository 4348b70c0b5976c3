package config

import "maps"

// Config is the root configuration aggregate.
type Config struct {
	Defaults          DefaultsConfig    `yaml:"defaults"`
	DependencyAliases map[string]string `yaml:"dependency_aliases"`
	Output            OutputConfig      `yaml:"output"`
	Log               LogConfig         `yaml:"log"`
	Catalog           CatalogConfig     `yaml:"catalog"`
	UI                UIConfig          `yaml:"ui"`
}

// DefaultsConfig fills generation request fields the user leaves blank.
type DefaultsConfig struct {
	GroupID     string `yaml:"group_id"`
	Profile     string `yaml:"profile"`
	Layout      string `yaml:"layout"`
	Enforcement string `yaml:"enforcement"`
	SampleCode  string `yaml:"sample_code"`
	JavaVersion string `yaml:"java_version"`
}

// OutputConfig controls what happens after the tree is written.
type OutputConfig struct {
	Archive bool `yaml:"archive"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text", "json"
}

// CatalogConfig points at an alternative artifact catalog directory. The
// directory must contain catalog.yaml and the templates it references.
type CatalogConfig struct {
	Dir string `yaml:"dir"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.DependencyAliases = maps.Clone(c.DependencyAliases)
	return &out
}
