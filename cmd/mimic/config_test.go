package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".mimic.yaml")
	configContent := `
verbose: true

palette:
  colors: 12
  algorithm: dominant

tokens:
  output: custom_tokens.json
  timeout: 30

analyze:
  format: json
  patterns:
    - "templates/**/*.html"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, 12, k.Int("palette.colors"))
	assert.Equal(t, "dominant", k.String("palette.algorithm"))
	assert.Equal(t, "custom_tokens.json", k.String("tokens.output"))
	assert.Equal(t, 30, k.Int("tokens.timeout"))
	assert.Equal(t, "json", k.String("analyze.format"))
	assert.Equal(t, []string{"templates/**/*.html"}, k.Strings("analyze.patterns"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.mimic.yaml"))

	assert.Equal(t, 8, getIntWithFallback("num-colors", "palette.colors", 8))
	assert.Equal(t, "kmeans", getStringWithFallback("algorithm", "palette.algorithm", "kmeans"))
	assert.False(t, getBoolWithFallback("verbose", "verbose", false))
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".mimic.yaml")
	configContent := `
palette:
  colors: 4
tokens:
  timeout: 5
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("MIMIC_PALETTE_COLORS", "16")
	t.Setenv("MIMIC_TOKENS_TIMEOUT", "60")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, 16, k.Int("palette.colors"))
	assert.Equal(t, 60, k.Int("tokens.timeout"))
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(".mimic.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "palette:")
	assert.Contains(t, string(data), "tokens:")
	assert.Contains(t, string(data), "analyze:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".mimic.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".mimic.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".mimic.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "palette:")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
