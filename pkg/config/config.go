// Package config provides configuration loading and validation for the
// stylefang scanner.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

// Sentinel validation errors.
var (
	ErrInvalidWorkers       = errors.New("scan workers must not be negative")
	ErrInvalidMaxLineLength = errors.New("max line length must be positive")
	ErrInvalidOutputFormat  = errors.New("invalid output format")
)

// Config holds all configuration for a scan.
type Config struct {
	Scan   ScanConfig   `mapstructure:"scan"`
	Rules  RulesConfig  `mapstructure:"rules"`
	Output OutputConfig `mapstructure:"output"`
}

// ScanConfig holds runner configuration.
type ScanConfig struct {
	// Workers bounds scan parallelism; zero selects the CPU count.
	Workers int `mapstructure:"workers"`
}

// RulesConfig holds the rule engine's tunable surface.
type RulesConfig struct {
	MaxLineLength         int      `mapstructure:"max_line_length"`
	FolderNameExceptions  []string `mapstructure:"folder_name_exceptions"`
	FileNameExceptions    []string `mapstructure:"file_name_exceptions"`
	Acronyms              []string `mapstructure:"acronyms"`
	CaseSensitiveAcronyms bool     `mapstructure:"case_sensitive_acronyms"`
	EnumPluralSuffixes    []string `mapstructure:"enum_plural_suffixes"`
}

// OutputConfig holds rendering configuration.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// Load reads configuration from an optional file, STYLEFANG_* environment
// variables, and defaults.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("stylefang")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/stylefang")
	}

	viperCfg.SetEnvPrefix("STYLEFANG")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viperCfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := viperCfg.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Scan.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Scan.Workers)
	}

	if c.Rules.MaxLineLength < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxLineLength, c.Rules.MaxLineLength)
	}

	switch c.Output.Format {
	case report.FormatText, report.FormatCompact, report.FormatJSON, report.FormatYAML, report.FormatPlot:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, c.Output.Format)
	}
}
