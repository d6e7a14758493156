package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "fine-tuning/datasets", cfg.DatasetsDir)
	assert.Equal(t, "fine-tuning/schemas", cfg.SchemasDir)
	assert.Equal(t, []string{"contracts", "medical", "financial", "legal"}, cfg.Domains)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().DatasetsDir, cfg.DatasetsDir)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "datacheck.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"datasets_dir: /corpora/datasets\ndomains:\n  - contracts\n  - medical\njobs: 2\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/corpora/datasets", cfg.DatasetsDir)
		// untouched fields keep defaults
		assert.Equal(t, "fine-tuning/schemas", cfg.SchemasDir)
		assert.Equal(t, []string{"contracts", "medical"}, cfg.Domains)
		assert.Equal(t, 2, cfg.Jobs)
	})

	t.Run("named missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("unparseable file is an error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("datasets_dir: [unclosed"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("directories and jobs from environment", func(t *testing.T) {
		t.Setenv("DATACHECK_DATASETS_DIR", "/env/datasets")
		t.Setenv("DATACHECK_SCHEMAS_DIR", "/env/schemas")
		t.Setenv("DATACHECK_JOBS", "3")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "/env/datasets", cfg.DatasetsDir)
		assert.Equal(t, "/env/schemas", cfg.SchemasDir)
		assert.Equal(t, 3, cfg.Jobs)
	})

	t.Run("malformed jobs value is ignored", func(t *testing.T) {
		t.Setenv("DATACHECK_JOBS", "many")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Jobs)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty datasets dir", func(c *Config) { c.DatasetsDir = "" }, "datasets_dir"},
		{"empty schemas dir", func(c *Config) { c.SchemasDir = "" }, "schemas_dir"},
		{"no domains", func(c *Config) { c.Domains = nil }, "at least one domain"},
		{"empty domain name", func(c *Config) { c.Domains = []string{"contracts", ""} }, "must not be empty"},
		{"duplicate domain", func(c *Config) { c.Domains = []string{"legal", "legal"} }, "duplicate domain"},
		{"negative jobs", func(c *Config) { c.Jobs = -1 }, "jobs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsValidDomain(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.IsValidDomain("medical"))
	assert.False(t, cfg.IsValidDomain("astrology"))
}
