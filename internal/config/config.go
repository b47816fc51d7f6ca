// Package config provides configuration management and validation for almanac.
// It centralizes command-line options, the optional YAML config file and
// ALMANAC_* environment variables, and validates them before any input is read.
package config

import (
	"strings"

	"almanac/internal/errors"
)

// ReportFormat represents the supported output formats for the run report.
type ReportFormat string

// Supported report formats. An empty format disables the report.
const (
	ReportNone ReportFormat = ""
	ReportText ReportFormat = "text"
	ReportJSON ReportFormat = "json"
	ReportCSV  ReportFormat = "csv"
)

// ColorMode controls ANSI colour in terminal output.
type ColorMode string

// Supported colour modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// DefaultInputFile is read when no input file is given.
const DefaultInputFile = "input"

// Config holds all runtime configuration options for a solver run.
type Config struct {
	Part         int          `yaml:"part"`
	InputFile    string       `yaml:"input"`
	Format       string       `yaml:"format"`
	ReportFormat ReportFormat `yaml:"report"`
	ReportFile   string       `yaml:"report_file"`
	Color        ColorMode    `yaml:"color"`
	Check        bool         `yaml:"check"`
	Verbose      bool         `yaml:"verbose"`
	Debug        bool         `yaml:"debug"`
	Quiet        bool         `yaml:"quiet"`
	LogLevel     string       `yaml:"log_level"`
}

// Default returns the configuration used when nothing else is specified.
func Default() *Config {
	return &Config{
		InputFile: DefaultInputFile,
		Color:     ColorAuto,
	}
}

// Validate performs validation of configuration settings and normalizes
// case-insensitive values.
func (c *Config) Validate() error {
	if err := c.validatePart(); err != nil {
		return err
	}

	if err := c.validateInputFile(); err != nil {
		return err
	}

	if err := c.validateFormat(); err != nil {
		return err
	}

	if err := c.validateReportFormat(); err != nil {
		return err
	}

	return c.validateColor()
}

func (c *Config) validatePart() error {
	if c.Part != 1 && c.Part != 2 {
		return errors.NewConfigError("invalid part number: use 1 or 2", nil)
	}
	return nil
}

func (c *Config) validateInputFile() error {
	if strings.TrimSpace(c.InputFile) == "" {
		return errors.NewConfigError("input file is required", nil)
	}
	return nil
}

func (c *Config) validateFormat() error {
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case "", "text", "json", "yaml":
		return nil
	default:
		return errors.NewConfigError("format must be 'text', 'json' or 'yaml'", nil)
	}
}

func (c *Config) validateReportFormat() error {
	c.ReportFormat = ReportFormat(strings.ToLower(string(c.ReportFormat)))
	switch c.ReportFormat {
	case ReportNone, ReportText, ReportJSON, ReportCSV:
		return nil
	default:
		return errors.NewConfigError("report format must be 'text', 'json' or 'csv'", nil)
	}
}

func (c *Config) validateColor() error {
	c.Color = ColorMode(strings.ToLower(string(c.Color)))
	switch c.Color {
	case "":
		c.Color = ColorAuto
		return nil
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return errors.NewConfigError("color must be 'auto', 'always' or 'never'", nil)
	}
}

// IsVerbose determines if verbose logging is enabled. Quiet overrides it.
func (c *Config) IsVerbose() bool {
	return c.Verbose && !c.Quiet
}

// IsDebug determines if debug logging is enabled. Quiet overrides it.
func (c *Config) IsDebug() bool {
	return c.Debug && !c.Quiet
}

// ShouldLog determines if any diagnostic logging should occur.
func (c *Config) ShouldLog() bool {
	return !c.Quiet
}

// ShouldReport reports whether a run report is written. Verbose runs get a
// text report when no format was chosen.
func (c *Config) ShouldReport() bool {
	if c.Quiet {
		return false
	}
	return c.ReportFormat != ReportNone || c.IsVerbose()
}

// EffectiveReportFormat returns the report format to use, applying the
// verbose default.
func (c *Config) EffectiveReportFormat() ReportFormat {
	if c.ReportFormat == ReportNone && c.IsVerbose() {
		return ReportText
	}
	return c.ReportFormat
}
