package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/katalvlaran/triad/triad"
)

// Config represents the complete triad configuration
type Config struct {
	Run     RunConfig     `mapstructure:"run"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// RunConfig controls the matching run itself
type RunConfig struct {
	// Population is the number of individuals; must be a positive multiple of 3 (default: 30)
	Population int `mapstructure:"population"`
	// Seed seeds the preference shuffle. 0 picks a seed from the clock;
	// the chosen seed is reported so the run can be replayed.
	Seed int64 `mapstructure:"seed"`
	// MaxProposals stops the run early after this many attempts (0 = run to completion)
	MaxProposals int `mapstructure:"max_proposals"`
	// Verify re-checks team/assignment consistency after every formation
	Verify bool `mapstructure:"verify"`
}

// OutputConfig controls what is printed to the terminal
type OutputConfig struct {
	// Trace prints one line per proposal attempt
	Trace bool `mapstructure:"trace"`
	// Color enables ANSI styling of the report
	Color bool `mapstructure:"color"`
}

// LoggingConfig controls structured logging
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn, error (default: warn)
	Level string `mapstructure:"level"`
	// File is the JSON log destination; empty logs to stderr
	File string `mapstructure:"file"`
}

// MetricsConfig controls metrics export
type MetricsConfig struct {
	// Textfile, if set, receives the run's Prometheus metrics in text format
	// (node_exporter textfile collector layout)
	Textfile string `mapstructure:"textfile"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Run: RunConfig{
			Population:   triad.DefaultPopulation,
			Seed:         0,
			MaxProposals: 0,
			Verify:       false,
		},
		Output: OutputConfig{
			Trace: false,
			Color: true,
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
		Metrics: MetricsConfig{
			Textfile: "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Run defaults
	viper.SetDefault("run.population", defaults.Run.Population)
	viper.SetDefault("run.seed", defaults.Run.Seed)
	viper.SetDefault("run.max_proposals", defaults.Run.MaxProposals)
	viper.SetDefault("run.verify", defaults.Run.Verify)

	// Output defaults
	viper.SetDefault("output.trace", defaults.Output.Trace)
	viper.SetDefault("output.color", defaults.Output.Color)

	// Logging defaults
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)

	// Metrics defaults
	viper.SetDefault("metrics.textfile", defaults.Metrics.Textfile)
}

// Load reads the configuration from viper and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "triad")
	}
	// Fall back to ~/.config/triad
	home, err := os.UserHomeDir()
	if err != nil {
		return ".triad"
	}
	return filepath.Join(home, ".config", "triad")
}
