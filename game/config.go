package game

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config holds the house-rule flags the rule chain is built from.
type Config struct {
	RatOnlyDenEntry          bool `yaml:"rat_only_den_entry"`
	ExtendedJumps            bool `yaml:"extended_jumps"`
	DogRiverEntry            bool `yaml:"dog_river_entry"`
	RatCannotCaptureElephant bool `yaml:"rat_cannot_capture_highest_rank"`
}

// configKeys maps every accepted option name, including the historical
// aliases, to the flag it sets.
var configKeys = map[string]func(*Config) *bool{
	"rat_only_den_entry":              func(c *Config) *bool { return &c.RatOnlyDenEntry },
	"extended_jumps":                  func(c *Config) *bool { return &c.ExtendedJumps },
	"extended_lion_tiger_jumps":       func(c *Config) *bool { return &c.ExtendedJumps },
	"dog_river_entry":                 func(c *Config) *bool { return &c.DogRiverEntry },
	"dog_river_variant":               func(c *Config) *bool { return &c.DogRiverEntry },
	"rat_cannot_capture_highest_rank": func(c *Config) *bool { return &c.RatCannotCaptureElephant },
	"rat_cannot_capture_elephant":     func(c *Config) *bool { return &c.RatCannotCaptureElephant },
}

// ConfigFromMap builds a Config from a flat option mapping. Unknown option
// names are rejected.
func ConfigFromMap(options map[string]bool) (Config, error) {
	var cfg Config
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		flag, ok := configKeys[name]
		if !ok {
			return Config{}, fmt.Errorf("unknown rule option %q", name)
		}
		if options[name] {
			*flag(&cfg) = true
		}
	}
	return cfg, nil
}

// LoadConfig reads a flat YAML mapping of rule options.
func LoadConfig(r io.Reader) (Config, error) {
	options := map[string]bool{}
	if err := yaml.NewDecoder(r).Decode(&options); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("failed to decode rule config: %w", err)
	}
	return ConfigFromMap(options)
}
