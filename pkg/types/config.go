package types

// ConversionConfig holds settings for the convert command.
type ConversionConfig struct {
	// OutputDir is the base directory for per-document output
	// (default "generate_data").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Outline enables writing outline.yaml next to output.md.
	Outline bool `json:"outline" yaml:"outline" mapstructure:"outline"`
}

// HistoryConfig holds settings for the conversion history ledger.
type HistoryConfig struct {
	// Enabled controls whether conversions are recorded (default true).
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory holding history.db. Defaults to the output
	// directory.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Limit is the default number of entries listed (default 20).
	Limit int `json:"limit" yaml:"limit" mapstructure:"limit"`
}

// Config groups all settings read from word2md.yaml and the environment.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:",squash"`
	History    HistoryConfig    `json:"history" yaml:"history" mapstructure:"history"`
}
