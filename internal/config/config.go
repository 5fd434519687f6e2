package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Flag names shared by the command line and the settings keys below
const (
	FlagFormat    = "format"
	FlagOutputDir = "output-dir"
	FlagLogLevel  = "log-level"
	FlagLogFile   = "log-file"
	FlagNoColor   = "no-color"
)

// Config represents application configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
	Console ConsoleConfig `mapstructure:"console"`
}

// OutputConfig selects the document format and where it is written
type OutputConfig struct {
	Format string `mapstructure:"format"` // "docx" or "ics"
	Dir    string `mapstructure:"dir"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty logs to stderr
}

// ConsoleConfig represents terminal output settings
type ConsoleConfig struct {
	NoColor bool `mapstructure:"no_color"`
}

// bindings maps settings keys to the flags that feed them
var bindings = map[string]string{
	"output.format":    FlagFormat,
	"output.dir":       FlagOutputDir,
	"log.level":        FlagLogLevel,
	"log.file":         FlagLogFile,
	"console.no_color": FlagNoColor,
}

// RegisterFlags adds the configuration flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagFormat, "docx", "Output format (docx or ics)")
	fs.String(FlagOutputDir, ".", "Directory the calendar is written to")
	fs.String(FlagLogLevel, "warn", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "Write JSON logs to this file with rotation instead of stderr")
	fs.Bool(FlagNoColor, false, "Disable coloured console output")
}

// Load builds the configuration from command-line flags. Settings come
// from flags and defaults only; no config file or environment is read.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("output.format", "docx")
	v.SetDefault("output.dir", ".")
	v.SetDefault("log.level", "warn")

	for key, flag := range bindings {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Output.Format = strings.ToLower(strings.TrimSpace(config.Output.Format))

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Output.Format == "" {
		return fmt.Errorf("output format is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output dir must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// GetLogLevel returns the parsed log level, warn if unparsable
func (c *LogConfig) GetLogLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}
