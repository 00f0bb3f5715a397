// Package config loads eventcap's command line configuration from
// defaults, an optional YAML file, EVENTCAP_* environment variables and
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Output formats
	FormatJSON = "json"
	FormatYAML = "yaml"

	// Default values
	DefaultLogLevel        = "info"
	DefaultDuration        = time.Hour
	DefaultOCRLanguage     = "eng"
	DefaultMinImageWidth   = 1000
	DefaultParagraphGap    = 20
	DefaultTitleCandidates = 3

	// EnvPrefix prefixes every environment variable, e.g. EVENTCAP_TIMEZONE
	EnvPrefix = "EVENTCAP"
)

// Flag and configuration file keys
const (
	KeyConfig          = "config"
	KeyTimezone        = "timezone"
	KeyLogLevel        = "log-level"
	KeyFormat          = "format"
	KeyDefaultDuration = "default-duration"
	KeyOCRLanguage     = "ocr-language"
	KeyMinImageWidth   = "min-image-width"
	KeyParagraphGap    = "paragraph-gap"
	KeyTitleCandidates = "title-candidates"
)

// Config holds all configuration for the eventcap command
type Config struct {
	// ConfigFile is the optional YAML configuration file
	ConfigFile string

	// Timezone is the IANA zone parsed dates are read in; empty is local
	Timezone string

	LogLevel string

	// Format is the output format of the parse command
	Format string

	// DefaultDuration is the length of exported events that only have a
	// start time
	DefaultDuration time.Duration

	// OCR configuration
	OCRLanguage   string
	MinImageWidth int

	// Extraction tuning
	ParagraphGap    int
	TitleCandidates int
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        DefaultLogLevel,
		Format:          FormatJSON,
		DefaultDuration: DefaultDuration,
		OCRLanguage:     DefaultOCRLanguage,
		MinImageWidth:   DefaultMinImageWidth,
		ParagraphGap:    DefaultParagraphGap,
		TitleCandidates: DefaultTitleCandidates,
	}
}

// RegisterFlags defines the configuration flags on fs, with defaults
// taken from cfg
func RegisterFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.String(KeyConfig, cfg.ConfigFile, "YAML configuration file")
	fs.String(KeyTimezone, cfg.Timezone, "IANA timezone dates are read in (default local)")
	fs.String(KeyLogLevel, cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringP(KeyFormat, "f", cfg.Format, "Output format (json, yaml)")
	fs.Duration(KeyDefaultDuration, cfg.DefaultDuration, "Length of exported events that have no end time")
	fs.String(KeyOCRLanguage, cfg.OCRLanguage, "Tesseract language for image input")
	fs.Int(KeyMinImageWidth, cfg.MinImageWidth, "Images narrower than this are upscaled before OCR")
	fs.Int(KeyParagraphGap, cfg.ParagraphGap, "Vertical gap in pixels that starts a new description paragraph")
	fs.Int(KeyTitleCandidates, cfg.TitleCandidates, "Number of tallest blocks considered as the title")
}

// Load builds a configuration from the parsed flag set fs, the
// environment and the configuration file named by --config, then
// validates it.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	setupViperEnvironment(v, cfg)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	populateConfigFromViper(v, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(v *viper.Viper, cfg *Config) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyConfig, cfg.ConfigFile)
	v.SetDefault(KeyTimezone, cfg.Timezone)
	v.SetDefault(KeyLogLevel, cfg.LogLevel)
	v.SetDefault(KeyFormat, cfg.Format)
	v.SetDefault(KeyDefaultDuration, cfg.DefaultDuration)
	v.SetDefault(KeyOCRLanguage, cfg.OCRLanguage)
	v.SetDefault(KeyMinImageWidth, cfg.MinImageWidth)
	v.SetDefault(KeyParagraphGap, cfg.ParagraphGap)
	v.SetDefault(KeyTitleCandidates, cfg.TitleCandidates)
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(v *viper.Viper, cfg *Config) {
	cfg.ConfigFile = v.GetString(KeyConfig)
	cfg.Timezone = v.GetString(KeyTimezone)
	cfg.LogLevel = strings.ToLower(v.GetString(KeyLogLevel))
	cfg.Format = strings.ToLower(v.GetString(KeyFormat))
	cfg.DefaultDuration = v.GetDuration(KeyDefaultDuration)
	cfg.OCRLanguage = v.GetString(KeyOCRLanguage)
	cfg.MinImageWidth = v.GetInt(KeyMinImageWidth)
	cfg.ParagraphGap = v.GetInt(KeyParagraphGap)
	cfg.TitleCandidates = v.GetInt(KeyTitleCandidates)
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	if c.Format != FormatJSON && c.Format != FormatYAML {
		return fmt.Errorf("invalid format: %s (must be json or yaml)", c.Format)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if c.DefaultDuration <= 0 {
		return errors.New("default duration must be positive")
	}

	if c.OCRLanguage == "" {
		return errors.New("OCR language cannot be empty")
	}

	if c.MinImageWidth < 0 {
		return errors.New("minimum image width cannot be negative")
	}

	if c.ParagraphGap < 0 {
		return errors.New("paragraph gap cannot be negative")
	}

	if c.TitleCandidates < 1 {
		return errors.New("title candidates must be at least 1")
	}

	return nil
}

// Location returns the configured timezone, or time.Local when none is set
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SlogLevel returns the log level as a slog.Level
func (c *Config) SlogLevel() slog.Level {
	return logLevels[c.LogLevel]
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Timezone: %q, LogLevel: %s, Format: %s, DefaultDuration: %s, OCRLanguage: %s, MinImageWidth: %d, ParagraphGap: %d, TitleCandidates: %d}",
		c.Timezone, c.LogLevel, c.Format, c.DefaultDuration, c.OCRLanguage, c.MinImageWidth, c.ParagraphGap, c.TitleCandidates)
}
