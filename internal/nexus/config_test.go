package nexus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Host    string `env:"NEXUS_TEST_HOST" yaml:"host" env-default:"localhost"`
	Port    string `env:"NEXUS_TEST_PORT" yaml:"port" env-default:"8080" validate:"required,numeric"`
	Backend string `env:"NEXUS_TEST_BACKEND" yaml:"backend" env-default:"none" validate:"oneof=none memory redis"`
}

func TestLoader_Defaults(t *testing.T) {
	var cfg testConfig
	err := NewLoader(WithOnlyEnvironment()).Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "none", cfg.Backend)
}

func TestLoader_Environment(t *testing.T) {
	t.Setenv("NEXUS_TEST_HOST", "0.0.0.0")
	t.Setenv("NEXUS_TEST_PORT", "9090")

	var cfg testConfig
	err := NewLoader(WithOnlyEnvironment()).Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoader_FileWithEnvironmentPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("host: file-host\nport: \"7070\"\nbackend: memory\n"), 0o600))
	t.Setenv("NEXUS_TEST_PORT", "6060")

	var cfg testConfig
	err := NewLoader(WithFileName(path)).Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "file-host", cfg.Host)
	assert.Equal(t, "6060", cfg.Port)
	assert.Equal(t, "memory", cfg.Backend)
}

func TestLoader_MissingFile(t *testing.T) {
	var cfg testConfig
	err := NewLoader(WithFileName(filepath.Join(t.TempDir(), "missing.yml"))).Load(&cfg)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeFileNotFound, cfgErr.Code)
}

func TestLoader_MissingDefaultFileIsIgnored(t *testing.T) {
	var cfg testConfig
	err := NewLoader(WithDefaultFileName(filepath.Join(t.TempDir(), ".env"))).Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoader_Overrides(t *testing.T) {
	var cfg testConfig
	err := NewLoader(WithOnlyEnvironment(), WithOverrides(&testConfig{Port: "1234"})).Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "1234", cfg.Port)
	assert.Equal(t, "localhost", cfg.Host, "zero override fields keep loaded values")
}

func TestLoader_ValidationFailure(t *testing.T) {
	t.Setenv("NEXUS_TEST_BACKEND", "memcached")

	var cfg testConfig
	err := NewLoader(WithOnlyEnvironment()).Load(&cfg)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeValidation, cfgErr.Code)
	assert.Contains(t, err.Error(), "Backend")
}

func TestLoader_InvalidType(t *testing.T) {
	var cfg testConfig
	err := NewLoader().Load(cfg)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeInvalidType, cfgErr.Code)
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var cfg testConfig
	err := NewLoader(WithOnlyEnvironment()).LoadWithContext(ctx, &cfg)
	assert.ErrorIs(t, err, context.Canceled)
}
