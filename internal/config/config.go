// Package config loads the contentsheet configuration from defaults, an optional
// YAML file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet"
	"github.com/ukaji3/contentsheet-go/pkg/contentsheet/media"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable, e.g. CONTENTSHEET_WORKBOOK.
const EnvPrefix = "contentsheet"

// Configuration validation errors.
var (
	ErrMissingWorkbook    = errors.New("workbook is required")
	ErrMissingEnglish     = errors.New("sheets.english_master is required")
	ErrMissingImportInfo  = errors.New("sheets.import_info is required")
	ErrInvalidMaxLength   = errors.New("content.max_length must be at least 1")
	ErrInvalidTimeout     = errors.New("request_timeout must be positive")
	ErrInvalidLogLevel    = errors.New("log_level must be one of: debug, info, warn, error")
	ErrInvalidLogEncoding = errors.New("log_encoding must be 'console' or 'json'")
)

// Config represents the complete configuration.
type Config struct {
	Workbook       string        `yaml:"workbook"`
	OutputPrefix   string        `yaml:"output_prefix" split_words:"true"`
	OutputDir      string        `yaml:"output_dir" split_words:"true"`
	MediaURL       string        `yaml:"media_url" split_words:"true"`
	Token          string        `yaml:"token" envconfig:"TURN_TOKEN"`
	RequestTimeout time.Duration `yaml:"request_timeout" split_words:"true"`
	LogLevel       string        `yaml:"log_level" split_words:"true"`
	LogEncoding    string        `yaml:"log_encoding" split_words:"true"`

	Sheets  SheetsConfig  `yaml:"sheets" ignored:"true"`
	Content ContentConfig `yaml:"content" ignored:"true"`
}

// SheetsConfig names the sheets with special roles.
type SheetsConfig struct {
	EnglishMaster string   `yaml:"english_master"`
	ImportInfo    string   `yaml:"import_info"`
	Metadata      []string `yaml:"metadata"`
	Exempt        []string `yaml:"exempt"`
}

// ContentConfig controls content validation and rewriting.
type ContentConfig struct {
	MythsMarker       string   `yaml:"myths_marker"`
	MaxLength         int      `yaml:"max_length"`
	LanguageListTitle string   `yaml:"language_list_title"`
	ReplaceCountries  []string `yaml:"replace_countries"`
	PlaceholderNumber string   `yaml:"placeholder_number"`
}

// Default returns the configuration for the standard content workbook.
func Default() *Config {
	opts := contentsheet.DefaultOptions()
	return &Config{
		Workbook:       "who_content.xlsx",
		OutputPrefix:   "2",
		OutputDir:      ".",
		MediaURL:       media.DefaultURL,
		RequestTimeout: 30 * time.Second,
		LogLevel:       "info",
		LogEncoding:    "console",
		Sheets: SheetsConfig{
			EnglishMaster: opts.EnglishMaster,
			ImportInfo:    opts.ImportInfoSheet,
			Metadata:      opts.MetadataSheets,
			Exempt:        opts.ExemptSheets,
		},
		Content: ContentConfig{
			MythsMarker:       opts.MythsMarker,
			MaxLength:         opts.MaxContentLength,
			LanguageListTitle: opts.LanguageListTitle,
			ReplaceCountries:  opts.ReplaceCountries,
			PlaceholderNumber: opts.PlaceholderNumber,
		},
	}
}

// Load builds the configuration. path may be empty to skip the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Workbook == "" {
		return ErrMissingWorkbook
	}
	if c.Sheets.EnglishMaster == "" {
		return ErrMissingEnglish
	}
	if c.Sheets.ImportInfo == "" {
		return ErrMissingImportInfo
	}
	if c.Content.MaxLength < 1 {
		return ErrInvalidMaxLength
	}
	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	switch c.LogEncoding {
	case "console", "json":
	default:
		return ErrInvalidLogEncoding
	}
	return nil
}

// Options returns the pipeline options described by the configuration.
func (c *Config) Options() contentsheet.Options {
	return contentsheet.Options{
		EnglishMaster:     c.Sheets.EnglishMaster,
		ImportInfoSheet:   c.Sheets.ImportInfo,
		MetadataSheets:    c.Sheets.Metadata,
		ExemptSheets:      c.Sheets.Exempt,
		MythsMarker:       c.Content.MythsMarker,
		MaxContentLength:  c.Content.MaxLength,
		LanguageListTitle: c.Content.LanguageListTitle,
		ReplaceCountries:  c.Content.ReplaceCountries,
		PlaceholderNumber: c.Content.PlaceholderNumber,
	}
}
