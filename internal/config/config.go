// Package config holds the datacheck configuration: where the dataset
// splits and schema documents live, which domains exist, and how wide the
// parallel runner fans out. Values are resolved defaults < config file <
// environment < CLI flags.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all datacheck configuration.
type Config struct {
	// DatasetsDir contains one subdirectory per domain with its split files.
	DatasetsDir string `yaml:"datasets_dir"`

	// SchemasDir contains <domain>.json schema documents.
	SchemasDir string `yaml:"schemas_dir"`

	// Domains is the full set of known domains, used by --all.
	Domains []string `yaml:"domains"`

	// Jobs bounds concurrent domain validations; 0 means one goroutine per
	// domain.
	Jobs int `yaml:"jobs"`
}

// DefaultConfig returns the standard corpus layout.
func DefaultConfig() *Config {
	return &Config{
		DatasetsDir: "fine-tuning/datasets",
		SchemasDir:  "fine-tuning/schemas",
		Domains:     []string{"contracts", "medical", "financial", "legal"},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults (plus environment overrides); a named file that cannot be
// read or parsed is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides layers DATACHECK_* environment variables over the
// current values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DATACHECK_DATASETS_DIR"); v != "" {
		c.DatasetsDir = v
	}
	if v := os.Getenv("DATACHECK_SCHEMAS_DIR"); v != "" {
		c.SchemasDir = v
	}
	if v := os.Getenv("DATACHECK_JOBS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Jobs = n
		}
	}
}

// Validate rejects configurations the runner cannot act on.
func (c *Config) Validate() error {
	if c.DatasetsDir == "" {
		return fmt.Errorf("datasets_dir must not be empty")
	}
	if c.SchemasDir == "" {
		return fmt.Errorf("schemas_dir must not be empty")
	}
	if len(c.Domains) == 0 {
		return fmt.Errorf("at least one domain must be configured")
	}
	seen := make(map[string]bool, len(c.Domains))
	for _, d := range c.Domains {
		if d == "" {
			return fmt.Errorf("domain names must not be empty")
		}
		if seen[d] {
			return fmt.Errorf("duplicate domain %q", d)
		}
		seen[d] = true
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative")
	}
	return nil
}

// IsValidDomain reports whether name is one of the configured domains.
func (c *Config) IsValidDomain(name string) bool {
	for _, d := range c.Domains {
		if d == name {
			return true
		}
	}
	return false
}
