package config

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"almanac/internal/errors"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvInput    = "ALMANAC_INPUT"
	EnvFormat   = "ALMANAC_FORMAT"
	EnvReport   = "ALMANAC_REPORT"
	EnvColor    = "ALMANAC_COLOR"
	EnvLogLevel = "ALMANAC_LOG_LEVEL"
	EnvCheck    = "ALMANAC_CHECK"
)

// Load builds a configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment, in increasing precedence.
// Command-line flags are applied on top by the caller.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return nil, err
		}
	}

	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	return cfg, nil
}

// ApplyFile overlays the fields set in a YAML config file.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewConfigErrorWithPath(path, "failed to read config file", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && err != io.EOF {
		return errors.NewConfigErrorWithPath(path, "failed to parse config file", err)
	}
	return nil
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment. A missing file is not an error; existing variables win.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return errors.NewConfigErrorWithPath(".env", "failed to load environment file", err)
	}
	return nil
}

// ApplyEnv overlays ALMANAC_* environment variables that are set.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvInput); ok && v != "" {
		c.InputFile = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		c.Format = v
	}
	if v, ok := os.LookupEnv(EnvReport); ok && v != "" {
		c.ReportFormat = ReportFormat(v)
	}
	if v, ok := os.LookupEnv(EnvColor); ok && v != "" {
		c.Color = ColorMode(v)
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvCheck); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Check = b
		}
	}
}
