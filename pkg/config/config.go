// File: pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// DefaultFile is read from the working directory when no path is given.
	DefaultFile = "extractor.toml"

	EnvConfig = "EXTRACTOR_CONFIG"
	EnvOutput = "EXTRACTOR_OUTPUT"
	EnvDebug  = "EXTRACTOR_DEBUG"
)

// envFiles are loaded into the environment before the config is resolved.
// Variables already set are not overridden.
var envFiles = []string{".env"}

// Config holds the settings that can be preset outside the command line.
type Config struct {
	Output          string    `toml:"output"`
	Exclude         []string  `toml:"exclude"`
	ExcludeDefaults bool      `toml:"exclude_defaults"`
	Log             LogConfig `toml:"log"`

	// Path is the file the config was read from, empty when none was found.
	Path string `toml:"-"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ExcludeDefaults: true,
	}
}

// Load reads the config file and applies environment overrides. path wins
// over EXTRACTOR_CONFIG, which wins over extractor.toml in the working
// directory. Only an explicitly named file is required to exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
		explicit = path != ""
	}
	if path == "" {
		path = DefaultFile
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	} else {
		cfg.Path = path
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.Output = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDebug)); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvDebug, v, err)
		}
		cfg.Log.Debug = debug
	}
	return nil
}
