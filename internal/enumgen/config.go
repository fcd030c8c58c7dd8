package enumgeninternal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-project configuration file, looked up in
// the working directory. Command-line flags override its values.
const ConfigFile = ".enumevent.yaml"

// Config carries the build-time generation options.
type Config struct {
	// Deref toggles the dereference accessor pair on eligible types.
	Deref bool `yaml:"deref"`

	// OutFile is the name of the generated file within each namespace
	// package.
	OutFile string `yaml:"out"`
}

func DefaultConfig() Config {
	return Config{
		Deref:   true,
		OutFile: "enumevent_gen.go",
	}
}

// LoadConfig reads the configuration file from the working directory on
// top of the defaults. A missing file is not an error.
func LoadConfig(wd string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(filepath.Join(wd, ConfigFile))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}
	return cfg, nil
}
