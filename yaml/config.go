// Package yaml loads harvest run configuration from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoURLs         = errors.New("at least one url is required")
	ErrMissingOutput  = errors.New("output path is required")
	ErrInvalidTimeout = errors.New("timeout_sec must be at least 1")
	ErrInvalidRate    = errors.New("rate must be positive")
	ErrBadFilter      = errors.New("invalid filter pattern")
)

// Defaults applied when fields are unset.
const (
	DefaultOutput     = "wrangles_to_load.jsonl"
	DefaultTimeoutSec = 10
	DefaultRate       = 1.0
)

// Config is a harvest run configuration.
type Config struct {
	// URLs is the ordered list of pages to process. In sitemap mode each
	// entry names a site root instead.
	URLs []string `yaml:"urls"`

	// Output is the JSONL file the run writes to.
	Output string `yaml:"output"`

	// TimeoutSec bounds each page download, in seconds.
	TimeoutSec int `yaml:"timeout_sec"`

	// Rate is the maximum requests per second per domain.
	Rate float64 `yaml:"rate"`

	// UserAgent overrides the User-Agent header when set.
	UserAgent string `yaml:"user_agent"`

	// Sitemap switches the run to sitemap mode: page URLs are discovered
	// from each entry's sitemaps before harvesting.
	Sitemap bool `yaml:"sitemap"`

	// Filters are regular expressions restricting sitemap-discovered URLs;
	// a URL must match at least one. Ignored outside sitemap mode.
	Filters []string `yaml:"filters"`
}

// Default returns a Config with default values and no URLs.
func Default() *Config {
	return &Config{
		Output:     DefaultOutput,
		TimeoutSec: DefaultTimeoutSec,
		Rate:       DefaultRate,
	}
}

// Load reads a config file over the defaults. The result is not validated;
// call Validate before use.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Validate returns the first configuration problem found.
func (c *Config) Validate() error {
	if len(c.URLs) == 0 {
		return ErrNoURLs
	}
	if c.Output == "" {
		return ErrMissingOutput
	}
	if c.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if c.Rate <= 0 {
		return ErrInvalidRate
	}
	for _, pattern := range c.Filters {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("%w %q: %v", ErrBadFilter, pattern, err)
		}
	}
	return nil
}
