package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogPath  string  `yaml:"log-path" env:"LOG_PATH"`
	Console  Console `yaml:"console"`
}

// Console options only switch features off: cleanenv applies env-default to
// any zero field, so a default of true could never be turned off from the file.
type Console struct {
	DisableColors      bool `yaml:"disable-colors" env:"CONSOLE_DISABLE_COLORS"`
	DisableClearScreen bool `yaml:"disable-clear-screen" env:"CONSOLE_DISABLE_CLEAR_SCREEN"`
}

// MustLoad - load configuration from the yml file at path, or from the
// environment alone when there is no such file.
func MustLoad(path string) *Config {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
