package appconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	assert.Equal(t, Test, EnvFlagToEnvironment("test"))
	assert.Equal(t, Production, EnvFlagToEnvironment("Production"))
	assert.Equal(t, Production, EnvFlagToEnvironment("prod"))
	assert.Equal(t, Development, EnvFlagToEnvironment("development"))
	assert.Equal(t, Development, EnvFlagToEnvironment("staging"))
	assert.Equal(t, "production", Production.String())
}

func TestLoadFile(t *testing.T) {
	t.Run("overrides only the fields present", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "port: 8080\nenv: production\nexempt_api_keys:\n  - dashboard\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadFile(path, DefaultConfig())
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, Production, cfg.Env)
		assert.Equal(t, []string{"dashboard"}, cfg.ExemptApiKeys)
		assert.Equal(t, []string{"test"}, cfg.ApiKeys)
		assert.Equal(t, 100, cfg.RateLimit)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), DefaultConfig())
		require.Error(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: [1,2"), 0o600))

		_, err := LoadFile(path, DefaultConfig())
		assert.Error(t, err)
	})

	t.Run("out of range port", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: 70000\n"), 0o600))

		_, err := LoadFile(path, DefaultConfig())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})
}

func TestSplitKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitKeys(" a, ,b "))
	assert.Nil(t, SplitKeys(""))
}
