package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/withreach/gip-checkout/pkg/config"
)

type testConfig struct {
	Name    string        `env:"TEST_APP_NAME" envDefault:"paycheck"`
	Limit   int64         `env:"TEST_LIMIT" envDefault:"1024"`
	Infer   bool          `env:"TEST_INFER"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "paycheck", cfg.Name)
		assert.Equal(t, int64(1024), cfg.Limit)
		assert.False(t, cfg.Infer)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("TEST_APP_NAME", "custom")
		t.Setenv("TEST_INFER", "true")
		t.Setenv("TEST_TIMEOUT", "250ms")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "custom", cfg.Name)
		assert.True(t, cfg.Infer)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("honours prefix", func(t *testing.T) {
		t.Setenv("PAYCHECK_TEST_LIMIT", "7")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg, config.WithPrefix("PAYCHECK_")))
		assert.Equal(t, int64(7), cfg.Limit)
	})

	t.Run("reports parse errors", func(t *testing.T) {
		t.Setenv("TEST_LIMIT", "lots")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("reports missing required values", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("loads explicit env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_ENV_FILE_LIMIT=42\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("TEST_ENV_FILE_LIMIT") })

		var cfg struct {
			Limit int `env:"TEST_ENV_FILE_LIMIT"`
		}
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
		assert.Equal(t, 42, cfg.Limit)
	})

	t.Run("fails on missing explicit env file", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "absent.env")))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
