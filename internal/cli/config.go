package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".azwire.yml"

// Config holds the settings shared by every command. Values come from the
// config file, then AZWIRE_* environment variables, then flags.
type Config struct {
	Endpoint   string `yaml:"endpoint" envconfig:"ENDPOINT"`
	APIVersion string `yaml:"apiVersion" envconfig:"API_VERSION"`
	LogLevel   string `yaml:"logLevel" envconfig:"LOG_LEVEL"`
}

// LoadConfig reads path and applies environment overrides. A missing file
// is an error only when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := envconfig.Process("azwire", &cfg); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}
