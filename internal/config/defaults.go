package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile and
// REVF_* environment variables.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Reverse ReverseConfig `json:"reverse" yaml:"reverse" mapstructure:"reverse"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}

type ReverseConfig struct {
	ChunkSize  int    `json:"chunk_size" yaml:"chunk_size" mapstructure:"chunk_size"`    // Default: 8192
	ScratchDir string `json:"scratch_dir" yaml:"scratch_dir" mapstructure:"scratch_dir"` // Default: "" (TMPDIR, TEMP, TMP, TEMPDIR, /tmp)
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`    // Default: "warn"
	Format string `json:"format" yaml:"format" mapstructure:"format"` // Default: "console"
}

// MaxChunkSize caps reverse.chunk_size; every chunk is held in memory.
const MaxChunkSize = 64 * 1024 * 1024

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Reverse: ReverseConfig{
			ChunkSize:  8192,
			ScratchDir: "",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
