// Package config defines process configuration and how it is loaded.
//
// Conventions:
// - New returns a Config holding defaults.
// - Load layers defaults, an optional YAML file and CHAMPIONS_* env vars.
// - Errors are wrapped with this package's sentinel kinds.
package config

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinInput makes the CLI read the roster from standard input.
const StdinInput = "-"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Input is the roster file path; "-" reads stdin.
	Input string `koanf:"input"`

	// Format selects how champions are printed: text, json or yaml.
	Format string `koanf:"format"`

	// MetricsTextfile, when set, receives a Prometheus text exposition of
	// the run's metrics. Empty disables the export.
	MetricsTextfile string `koanf:"metrics_textfile"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Input:           StdinInput,
		Format:          FormatText,
		MetricsTextfile: "",
	}
}
