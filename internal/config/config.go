package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// DefaultConfigFile is the config file name used when no path is supplied.
const DefaultConfigFile = "report_config.json"

// Config represents the complete report generator configuration
type Config struct {
	CompanyName     string  `json:"company_name" validate:"required"`
	ReportTitle     string  `json:"report_title" validate:"required"`
	OutputDirectory string  `json:"output_directory" validate:"required"`
	DateFormat      string  `json:"date_format" validate:"required"`
	Colors          Palette `json:"colors"`
}

// Palette holds the named color slots used for sheet styling.
// Each value is a 6-hex-digit RGB string without a leading '#'.
type Palette struct {
	Header    string `json:"header" validate:"required,len=6,hexadecimal"`
	Subheader string `json:"subheader" validate:"required,len=6,hexadecimal"`
	Accent    string `json:"accent" validate:"required,len=6,hexadecimal"`
}

// envOverrides carries the single supported environment knob: the config
// file path. Report behavior itself is never environment-driven.
type envOverrides struct {
	ConfigFile string `envconfig:"CONFIG_FILE"`
}

// Default returns the hard-coded fallback configuration. A fresh value is
// constructed per call so callers can never share mutable state.
func Default() Config {
	return Config{
		CompanyName:     "Your Company Name",
		ReportTitle:     "Automated Report",
		OutputDirectory: "reports",
		DateFormat:      "%Y-%m-%d",
		Colors: Palette{
			Header:    "366092",
			Subheader: "5B9BD5",
			Accent:    "70AD47",
		},
	}
}

// ResolvePath returns the config file path to use: the explicit path if
// non-empty, then the REPORTGEN_CONFIG_FILE environment variable, then
// DefaultConfigFile.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	var env envOverrides
	if err := envconfig.Process("REPORTGEN", &env); err == nil && env.ConfigFile != "" {
		return env.ConfigFile
	}

	return DefaultConfigFile
}

// Load resolves the configuration from the given file path. Configuration
// problems never block report generation: a missing file is created with
// default values so subsequent runs are customizable, and a malformed or
// invalid file falls back to defaults in memory without touching the file.
func Load(path string, logger *slog.Logger) Config {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := persistDefaults(path, cfg); writeErr != nil {
			logger.Warn("failed to write default config file",
				slog.String("path", path),
				slog.String("error", writeErr.Error()))
		} else {
			logger.Info("created default config file", slog.String("path", path))
		}
		return cfg
	}
	if err != nil {
		logger.Warn("failed to read config file, using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return cfg
	}

	// Unmarshal over the defaults so missing keys keep their default values
	// and unknown keys are ignored.
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.Warn("malformed config file, using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return Default()
	}

	if err := cfg.validate(); err != nil {
		logger.Warn("invalid config values, using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return Default()
	}

	return cfg
}

// validate checks the loaded configuration with struct tags
func (c Config) validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// persistDefaults writes the default configuration as pretty-printed JSON
func persistDefaults(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
