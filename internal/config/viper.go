// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "FINTRACK"

// Storage drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig configures the tabular export.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// StorageConfig selects where transactions and settings are persisted.
// Path is a directory for the file driver and a database file for sqlite.
type StorageConfig struct {
	Driver string `mapstructure:"driver" yaml:"driver"`
	Path   string `mapstructure:"path" yaml:"path"`
}

// ReportConfig holds the page layout of document reports, in millimetres.
type ReportConfig struct {
	Title        string  `mapstructure:"title" yaml:"title"`
	PageHeight   float64 `mapstructure:"page_height" yaml:"page_height"`
	TopMargin    float64 `mapstructure:"top_margin" yaml:"top_margin"`
	HeaderHeight float64 `mapstructure:"header_height" yaml:"header_height"`
	LineHeight   float64 `mapstructure:"line_height" yaml:"line_height"`
	LabelX       float64 `mapstructure:"label_x" yaml:"label_x"`
	AmountX      float64 `mapstructure:"amount_x" yaml:"amount_x"`
	TextWidth    int     `mapstructure:"text_width" yaml:"text_width"`
}

// ExportConfig holds the defaults of the export command.
type ExportConfig struct {
	Directory string   `mapstructure:"directory" yaml:"directory"`
	Formats   []string `mapstructure:"formats" yaml:"formats"`
}

// Config represents the complete application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	CSV     CSVConfig     `mapstructure:"csv" yaml:"csv"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Report  ReportConfig  `mapstructure:"report" yaml:"report"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
}

// Delimiter returns the tabular delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// InitializeConfig loads defaults, then config.yaml from $HOME/.fintrack, .fintrack or the
// working directory, then FINTRACK_* environment variables.
func InitializeConfig() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig is InitializeConfig with an explicit config file. An empty path searches the default locations.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.fintrack")
		v.AddConfigPath(".fintrack")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultDataDir is where data lives unless storage.path is set.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fintrack"
	}
	return filepath.Join(home, ".fintrack")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("storage.path", filepath.Join(DefaultDataDir(), "data"))

	v.SetDefault("report.title", "Financial Report")
	v.SetDefault("report.page_height", 280.0)
	v.SetDefault("report.top_margin", 20.0)
	v.SetDefault("report.header_height", 20.0)
	v.SetDefault("report.line_height", 10.0)
	v.SetDefault("report.label_x", 20.0)
	v.SetDefault("report.amount_x", 150.0)
	v.SetDefault("report.text_width", 60)

	v.SetDefault("export.directory", ".")
	v.SetDefault("export.formats", []string{"csv"})
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}
	switch config.Delimiter() {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("CSV delimiter cannot be %q", config.CSV.Delimiter)
	}

	if config.Storage.Driver != DriverFile && config.Storage.Driver != DriverSQLite {
		return fmt.Errorf("invalid storage driver: %s (must be '%s' or '%s')", config.Storage.Driver, DriverFile, DriverSQLite)
	}
	if config.Storage.Path == "" {
		return fmt.Errorf("storage.path cannot be empty")
	}

	r := config.Report
	if r.PageHeight <= 0 || r.LineHeight <= 0 {
		return fmt.Errorf("report.page_height and report.line_height must be positive, got: %.1f, %.1f", r.PageHeight, r.LineHeight)
	}
	if r.TopMargin < 0 || r.HeaderHeight < 0 {
		return fmt.Errorf("report.top_margin and report.header_height cannot be negative")
	}
	if r.TextWidth < 10 {
		return fmt.Errorf("report.text_width must be at least 10, got: %d", r.TextWidth)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
