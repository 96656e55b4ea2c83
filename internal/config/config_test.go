package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Uses defaults without a config file", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf := MustLoad(path)

		// Then: defaults are applied
		expectedConfig := &Config{
			LogLevel: "warn",
			LogPath:  "",
			Console: Console{
				DisableColors:      false,
				DisableClearScreen: false,
			},
		}
		require.Equal(t, expectedConfig, conf)
	})

	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file overriding every field
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\n" +
			"log-path: /tmp/tictactoe.log\n" +
			"console:\n" +
			"  disable-colors: true\n" +
			"  disable-clear-screen: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf := MustLoad(path)

		// Then: the file values are used
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "/tmp/tictactoe.log", conf.LogPath)
		assert.True(t, conf.Console.DisableColors)
		assert.True(t, conf.Console.DisableClearScreen)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: LOG_LEVEL set in the environment
		t.Setenv("LOG_LEVEL", "error")

		// When: loading the config without a file
		conf := MustLoad(filepath.Join(t.TempDir(), "config.yml"))

		// Then: the environment value is used
		assert.Equal(t, "error", conf.LogLevel)
	})

	t.Run("Panics on a malformed file", func(t *testing.T) {
		// Given: a file that is not valid yml
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [debug\n"), 0o600))

		// Then: loading panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}
