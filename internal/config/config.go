// Package config loads the command line tool's settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/tsawler/parafind/ocr"
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config holds the settings of a parafind run.
type Config struct {
	// DebugLevel is the detector's debug level, 0 to 3
	DebugLevel int `mapstructure:"debug_level"`

	// Output is the result format, table or json
	Output string `mapstructure:"output"`

	// PreRecognition ignores word texts and uses geometry only
	PreRecognition bool `mapstructure:"pre_recognition"`

	// PlainText reads word cues from bytes instead of Unicode classes
	PlainText bool `mapstructure:"plain_text"`

	// Language is the OCR language for image input
	Language string `mapstructure:"language"`

	// PageSegMode is the Tesseract page segmentation mode for image input
	PageSegMode int `mapstructure:"page_seg_mode"`

	// LogDebug enables debug-level log entries
	LogDebug bool `mapstructure:"log_debug"`
}

// Default returns the settings used when no configuration file exists.
func Default() *Config {
	return &Config{
		DebugLevel:  0,
		Output:      OutputTable,
		Language:    "eng",
		PageSegMode: int(ocr.PSM_AUTO),
	}
}

// Load reads the configuration from path, or when path is empty from
// .parafind.yaml in the home or current directory. A missing default file
// is not an error. PARAFIND_* environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("debug_level", def.DebugLevel)
	v.SetDefault("output", def.Output)
	v.SetDefault("pre_recognition", def.PreRecognition)
	v.SetDefault("plain_text", def.PlainText)
	v.SetDefault("language", def.Language)
	v.SetDefault("page_seg_mode", def.PageSegMode)
	v.SetDefault("log_debug", def.LogDebug)

	v.SetEnvPrefix("PARAFIND")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".parafind")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings for values the tool cannot use.
func (c *Config) Validate() error {
	if c.DebugLevel < 0 || c.DebugLevel > 3 {
		return fmt.Errorf("debug level must be between 0 and 3, got %d", c.DebugLevel)
	}
	if c.Output != OutputTable && c.Output != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputTable, OutputJSON, c.Output)
	}
	if !ocr.PageSegMode(c.PageSegMode).Valid() {
		return fmt.Errorf("page segmentation mode must be between 0 and 13, got %d", c.PageSegMode)
	}
	return nil
}
