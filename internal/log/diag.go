package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"almanac/internal/config"
	"almanac/internal/output"
)

// NewDiagnostic creates the zerolog logger used for progress and debug
// messages. An explicit LogLevel wins; otherwise --debug, --verbose and
// --quiet pick the level, and the default only shows warnings.
func NewDiagnostic(cfg *config.Config, w io.Writer) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !output.UseColor(cfg.Color, w),
		TimeFormat: time.TimeOnly,
	}

	return zerolog.New(writer).
		Level(diagnosticLevel(cfg)).
		With().
		Timestamp().
		Logger()
}

func diagnosticLevel(cfg *config.Config) zerolog.Level {
	if !cfg.ShouldLog() {
		return zerolog.Disabled
	}
	if cfg.LogLevel != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
			return lvl
		}
	}
	switch {
	case cfg.IsDebug():
		return zerolog.DebugLevel
	case cfg.IsVerbose():
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}
