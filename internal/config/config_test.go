package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://davidmegginson.github.io/ourairports-data", cfg.Source.BaseURL)
	assert.Equal(t, "airdata-cli/1.0", cfg.Source.UserAgent)
	assert.Equal(t, 0, cfg.Source.TimeoutSecs)
	assert.InDelta(t, 5.0, cfg.Source.RateLimit, 0.001)
	assert.False(t, cfg.Source.LazyQuotes)
	assert.False(t, cfg.Source.TrimSpace)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.Equal(t, "none", cfg.Output.Compression)
	assert.False(t, cfg.Output.Indent)
	assert.Empty(t, cfg.Generate.Datasets)
	assert.Equal(t, "abort", cfg.Generate.RowPolicy)
	assert.Equal(t, ".", cfg.Repo.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "", cfg.Log.File)

	assert.NoError(t, cfg.Validate())
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
source:
  base_url: http://mirror.local/ourairports
  timeout_secs: 120
  lazy_quotes: true
output:
  dir: dist
  compression: zstd
generate:
  datasets: [airports, navaids]
  row_policy: skip
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://mirror.local/ourairports", cfg.Source.BaseURL)
	assert.Equal(t, 120, cfg.Source.TimeoutSecs)
	assert.True(t, cfg.Source.LazyQuotes)
	assert.False(t, cfg.Source.TrimSpace)
	assert.Equal(t, "dist", cfg.Output.Dir)
	assert.Equal(t, "zstd", cfg.Output.Compression)
	assert.Equal(t, []string{"airports", "navaids"}, cfg.Generate.Datasets)
	assert.Equal(t, "skip", cfg.Generate.RowPolicy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	// Defaults still apply for unset values
	assert.Equal(t, "airdata-cli/1.0", cfg.Source.UserAgent)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
output:
  dir: dist
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("AIRDATA_OUTPUT_DIR", "/srv/airdata")
	t.Setenv("AIRDATA_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/airdata", cfg.Output.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("AIRDATA_GENERATE_ROW_POLICY", "skip")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "skip", cfg.Generate.RowPolicy)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: [unclosed"), 0644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Source.BaseURL = "https://example.com"
	cfg.Output.Dir = "out"
	cfg.Generate.RowPolicy = "abort"
	assert.NoError(t, cfg.Validate())

	cfg.Source.BaseURL = ""
	cfg.Output.Compression = "gzip"
	cfg.Generate.RowPolicy = "ignore"
	cfg.Source.TimeoutSecs = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.base_url is required")
	assert.Contains(t, err.Error(), "output.compression")
	assert.Contains(t, err.Error(), "generate.row_policy")
	assert.Contains(t, err.Error(), "source.timeout_secs")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

func TestInitLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airdata.log")
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json", File: path, MaxSizeMB: 1, MaxBackups: 1}))
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })

	zap.L().Info("hello from test")
	_ = zap.L().Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}
