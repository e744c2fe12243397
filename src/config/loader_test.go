package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
agent:
  name: ratio-bot
  version: 2.0.0
analysis:
  exclude_extensions: [".txt", ".log"]
output:
  format: json
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.Agent.Version)
	assert.Equal(t, []string{".txt", ".log"}, cfg.Analysis.ExcludeExtensions)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "ratio-bot", cfg.Agent.Name)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("RATIO_LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "logging:\n" +
		"  level: ${RATIO_LOG_LEVEL}\n" +
		"output:\n" +
		"  output_dir: ${RATIO_OUT_DIR:-reports}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "reports", cfg.Output.OutputDir)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [broken\n"), 0o644))

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}
