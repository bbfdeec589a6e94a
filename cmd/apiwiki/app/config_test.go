package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/errors"
)

// TestLoadConfig verifies defaults.
func TestLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, constants.DiscoveryURL, config.DiscoveryURL)
	assert.Equal(t, constants.CodegenURL, config.CodegenURL)
	assert.Equal(t, constants.SamplesURL, config.SamplesURL)
	assert.Equal(t, constants.Language, config.Language)
	assert.Equal(t, constants.DefaultHTTPTimeout, config.HTTPTimeout)
	assert.Equal(t, constants.DefaultConcurrency, config.Concurrency)
	assert.Zero(t, config.Rate)
	assert.Equal(t, constants.UserAgent, config.UserAgent)
	assert.NotEmpty(t, config.LogFormat)
	assert.False(t, config.DryRun)
}

// TestConfig_EnvironmentVariables verifies APIWIKI_* variables override defaults.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APIWIKI_CODEGEN_URL", "http://codegen.test")
	t.Setenv("APIWIKI_HTTP_TIMEOUT", "5s")
	t.Setenv("APIWIKI_CONCURRENCY", "4")
	t.Setenv("APIWIKI_VERBOSE", "true")
	t.Setenv("LOG_LEVEL", "warn")

	config, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "http://codegen.test", config.CodegenURL)
	assert.Equal(t, 5*time.Second, config.HTTPTimeout)
	assert.Equal(t, 4, config.Concurrency)
	assert.True(t, config.Verbose)
	assert.Equal(t, "warn", config.EnvLogLevel)
	assert.Empty(t, config.LogLevel)
}

// TestConfig_File verifies an explicit config file and flag precedence.
func TestConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apiwiki.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
discovery_url: http://discovery.test/v1
samples_url: http://samples.test/hg
concurrency: 2
rate: 5
extras: extras.yaml
`), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("concurrency", constants.DefaultConcurrency, "")
	flags.Float64("rate", 0, "")
	require.NoError(t, flags.Parse([]string{"--concurrency", "8"}))

	config, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, path, config.ConfigFile)
	assert.Equal(t, "http://discovery.test/v1", config.DiscoveryURL)
	assert.Equal(t, "http://samples.test/hg", config.SamplesURL)
	assert.Equal(t, constants.CodegenURL, config.CodegenURL)
	assert.Equal(t, "extras.yaml", config.Extras)
	assert.Equal(t, 8, config.Concurrency, "flag set by the user wins")
	assert.Equal(t, 5.0, config.Rate, "unset flag keeps the file value")
}

// TestConfig_Errors verifies unreadable files and out of range values.
func TestConfig_Errors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		var cfgErr *errors.ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("concurrency out of range", func(t *testing.T) {
		t.Setenv("APIWIKI_CONCURRENCY", "0")
		_, err := LoadConfig("", nil)
		var cfgErr *errors.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "concurrency", cfgErr.Component)
	})

	t.Run("negative rate", func(t *testing.T) {
		t.Setenv("APIWIKI_RATE", "-1")
		_, err := LoadConfig("", nil)
		var cfgErr *errors.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "rate", cfgErr.Component)
	})
}
