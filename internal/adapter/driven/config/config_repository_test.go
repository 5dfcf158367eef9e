package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	repo := NewConfigRepository()

	t.Run("TOML", func(t *testing.T) {
		path := writeFile(t, "billing.toml", `
api_url = "https://api.example.com/v2"
account_id = "root123"
include_root = true
report_type = ["csv", "pdf"]
page_size = 50

[options]
region = "us"
`)
		cfg, err := repo.LoadConfigFile(path)

		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com/v2", cfg.APIURL)
		assert.Equal(t, "root123", cfg.AccountID)
		require.NotNil(t, cfg.IncludeRoot)
		assert.True(t, *cfg.IncludeRoot)
		assert.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
		assert.Equal(t, 50, cfg.PageSize)
		assert.Equal(t, map[string]string{"region": "us"}, cfg.Options)
	})

	t.Run("YAML with env expansion", func(t *testing.T) {
		t.Setenv("KAZOO_TEST_KEY", "from-env")
		path := writeFile(t, "billing.yml", `
api_url: https://api.example.com/v2
api_key: ${KAZOO_TEST_KEY}
account_id: " root123 "
`)
		cfg, err := repo.LoadConfigFile(path)

		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.APIKey)
		assert.Equal(t, "root123", cfg.AccountID)
		assert.Nil(t, cfg.IncludeRoot)
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeFile(t, "billing.json", `{"api_url": "https://api.example.com/v2", "include_root": false, "dir": "/tmp/reports"}`)

		cfg, err := repo.LoadConfigFile(path)

		require.NoError(t, err)
		require.NotNil(t, cfg.IncludeRoot)
		assert.False(t, *cfg.IncludeRoot)
		assert.Equal(t, "/tmp/reports", cfg.Dir)
	})

	t.Run("Unsupported extension", func(t *testing.T) {
		path := writeFile(t, "billing.ini", "api_url=x")

		_, err := repo.LoadConfigFile(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config file format")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := repo.LoadConfigFile(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})
}
