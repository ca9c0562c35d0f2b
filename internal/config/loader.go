package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "revf"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
	// ConfigFileYAML is consulted when ConfigFile does not exist
	ConfigFileYAML = "config.yaml"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "REVF_"
)

// envOverrides maps environment variables onto config sections and keys.
var envOverrides = []struct {
	name    string
	section string
	key     string
}{
	{EnvPrefix + "CHUNK_SIZE", "reverse", "chunk_size"},
	{EnvPrefix + "SCRATCH_DIR", "reverse", "scratch_dir"},
	{EnvPrefix + "LOG_LEVEL", "log", "level"},
	{EnvPrefix + "LOG_FORMAT", "log", "format"},
}

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs        FileSystem
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a production Loader using the real filesystem and
// process environment
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}, lookupEnv: os.LookupEnv}
}

// NewLoaderWithFS creates a Loader with a custom filesystem and environment
// (for testing). A nil lookupEnv disables environment overrides.
func NewLoaderWithFS(fs FileSystem, lookupEnv func(string) (string, bool)) *Loader {
	if lookupEnv == nil {
		lookupEnv = func(string) (string, bool) { return "", false }
	}
	return &Loader{fs: fs, lookupEnv: lookupEnv}
}

// Load reads configuration from ~/.config/revf/config.json (or config.yaml
// when no JSON file exists), merges it over the defaults, then applies
// REVF_* environment overrides.
// Returns default config if no dotfile exists.
// Returns error only for parse errors, permission issues, or validation failures.
//
// NOTE: This implementation unmarshals keys directly over the default configuration.
// This allows explicit zero values (e.g., 0, "") in the config file to override defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := l.loadDotfile(cfg); err != nil {
		return nil, err
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}

	// Validate the merged configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) loadDotfile(cfg *Config) error {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return nil // Use defaults if can't get home dir
	}

	dir := filepath.Join(homeDir, ".config", ConfigDir)

	data, err := l.fs.ReadFile(filepath.Join(dir, ConfigFile))
	if err == nil {
		return json.Unmarshal(data, cfg)
	}
	if !os.IsNotExist(err) {
		return err // Return error for permission issues
	}

	data, err = l.fs.ReadFile(filepath.Join(dir, ConfigFileYAML))
	if err == nil {
		return yaml.Unmarshal(data, cfg)
	}
	if !os.IsNotExist(err) {
		return err
	}

	return nil // Use defaults if no file exists
}

// applyEnv decodes the REVF_* variables that are set over cfg. Values are
// strings, so decoding is weakly typed.
func (l *Loader) applyEnv(cfg *Config) error {
	overrides := make(map[string]any)
	for _, o := range envOverrides {
		value, ok := l.lookupEnv(o.name)
		if !ok {
			continue
		}
		section, _ := overrides[o.section].(map[string]any)
		if section == nil {
			section = make(map[string]any)
			overrides[o.section] = section
		}
		section[o.key] = value
	}
	if len(overrides) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(overrides); err != nil {
		return fmt.Errorf("invalid %s environment override: %w", EnvPrefix, err)
	}
	return nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
