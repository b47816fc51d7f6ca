// Package log provides diagnostics and run reporting for almanac.
// Diagnostics go through zerolog; the run report records every stage of the
// remapping and renders it as a text summary, JSON or CSV.
package log

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"almanac/internal/config"
	"almanac/internal/errors"
	"almanac/internal/rangemap"
	"almanac/internal/solver"
)

// Entry records one stage of a run.
type Entry struct {
	Index        int    `json:"index"`
	Stage        string `json:"stage"`
	Rules        int    `json:"rules"`
	IntervalsIn  int    `json:"intervals_in"`
	IntervalsOut int    `json:"intervals_out"`
	LengthIn     uint64 `json:"length_in"`
	LengthOut    uint64 `json:"length_out"`
	MinimumStart uint64 `json:"minimum_start"`
}

// Summary provides aggregate statistics for the whole run.
type Summary struct {
	Part           int           `json:"part"`
	InputFile      string        `json:"input_file"`
	SeedMode       string        `json:"seed_mode"`
	SeedIntervals  int           `json:"seed_intervals"`
	Stages         int           `json:"stages"`
	FinalIntervals int           `json:"final_intervals"`
	CoveredLength  uint64        `json:"covered_length"`
	Answer         uint64        `json:"answer"`
	ProcessingTime time.Duration `json:"processing_time"`
}

// Logger collects stage entries during a run and writes the final report.
type Logger struct {
	config  *config.Config
	writer  io.Writer
	file    *os.File
	diag    zerolog.Logger
	entries []Entry
	summary Summary
}

// NewLogger creates a Logger writing its report to cfg.ReportFile, or to w
// when no file is set.
func NewLogger(cfg *config.Config, w io.Writer, diag zerolog.Logger) (*Logger, error) {
	if cfg.ReportFile == "" {
		return newLogger(cfg, w, diag), nil
	}

	file, err := os.Create(cfg.ReportFile)
	if err != nil {
		return nil, errors.NewConfigErrorWithPath(cfg.ReportFile, "failed to create report file", err)
	}
	l := newLogger(cfg, file, diag)
	l.file = file
	return l, nil
}

func newLogger(cfg *config.Config, w io.Writer, diag zerolog.Logger) *Logger {
	return &Logger{
		config:  cfg,
		writer:  w,
		diag:    diag,
		entries: []Entry{},
		summary: Summary{
			Part:      cfg.Part,
			InputFile: cfg.InputFile,
		},
	}
}

// Middleware returns a rangemap middleware that records every stage.
func (l *Logger) Middleware() rangemap.Middleware {
	return func(ctx rangemap.StageContext) rangemap.StageContext {
		l.LogStage(ctx)
		return ctx
	}
}

// LogStage records the outcome of one stage.
func (l *Logger) LogStage(ctx rangemap.StageContext) {
	minimum, _ := rangemap.MinimumStart(ctx.Output)
	entry := Entry{
		Index:        ctx.Index + 1,
		Stage:        ctx.Stage.Name,
		Rules:        len(ctx.Stage.Rules),
		IntervalsIn:  len(ctx.Input),
		IntervalsOut: len(ctx.Output),
		LengthIn:     rangemap.TotalLength(ctx.Input),
		LengthOut:    rangemap.TotalLength(ctx.Output),
		MinimumStart: minimum,
	}
	l.entries = append(l.entries, entry)

	l.diag.Info().
		Int("stage", entry.Index).
		Str("name", entry.Stage).
		Int("intervals_in", entry.IntervalsIn).
		Int("intervals_out", entry.IntervalsOut).
		Uint64("minimum", entry.MinimumStart).
		Msg("stage applied")

	if l.diag.GetLevel() <= zerolog.DebugLevel {
		for _, iv := range ctx.Output {
			l.diag.Debug().Int("stage", entry.Index).Stringer("interval", iv).Msg("interval")
		}
	}
}

// SetResult records the solver outcome in the summary.
func (l *Logger) SetResult(result *solver.Result) {
	l.summary.Part = result.Part
	l.summary.SeedMode = result.Mode.String()
	l.summary.SeedIntervals = len(result.Seeds)
	l.summary.Stages = len(l.entries)
	l.summary.FinalIntervals = len(result.Final)
	l.summary.CoveredLength = rangemap.TotalLength(result.Final)
	l.summary.Answer = result.Answer
}

// SetProcessingTime records the total run duration.
func (l *Logger) SetProcessingTime(duration time.Duration) {
	l.summary.ProcessingTime = duration
}

// Entries returns the recorded stage entries.
func (l *Logger) Entries() []Entry {
	return l.entries
}

// WriteReport writes the report in the configured format. Nothing is
// written when reporting is off.
func (l *Logger) WriteReport() error {
	if !l.config.ShouldReport() {
		return nil
	}

	switch l.config.EffectiveReportFormat() {
	case config.ReportJSON:
		return l.writeJSONReport()
	case config.ReportCSV:
		return l.writeCSVReport()
	default:
		return l.writeSummaryReport()
	}
}

func (l *Logger) writeJSONReport() error {
	report := struct {
		Summary Summary `json:"summary"`
		Entries []Entry `json:"entries"`
	}{
		Summary: l.summary,
		Entries: l.entries,
	}

	encoder := json.NewEncoder(l.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func (l *Logger) writeCSVReport() error {
	writer := csv.NewWriter(l.writer)

	header := []string{
		"index", "stage", "rules", "intervals_in", "intervals_out", "length_in", "length_out", "minimum_start",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, entry := range l.entries {
		record := []string{
			strconv.Itoa(entry.Index),
			entry.Stage,
			strconv.Itoa(entry.Rules),
			strconv.Itoa(entry.IntervalsIn),
			strconv.Itoa(entry.IntervalsOut),
			strconv.FormatUint(entry.LengthIn, 10),
			strconv.FormatUint(entry.LengthOut, 10),
			strconv.FormatUint(entry.MinimumStart, 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	// Statistics trail the records as comment lines.
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	fmt.Fprintf(l.writer, "# Almanac CSV Report (part %d, %s seeds)\n", l.summary.Part, l.summary.SeedMode)
	fmt.Fprintf(l.writer, "# Input: %s\n", l.summary.InputFile)
	fmt.Fprintf(l.writer, "# Seed intervals: %d\n", l.summary.SeedIntervals)
	fmt.Fprintf(l.writer, "# Final intervals: %d\n", l.summary.FinalIntervals)
	fmt.Fprintf(l.writer, "# Answer: %d\n", l.summary.Answer)
	fmt.Fprintf(l.writer, "# Processing time: %v\n", l.summary.ProcessingTime)

	return nil
}

func (l *Logger) writeSummaryReport() error {
	fmt.Fprintf(l.writer, "\n=== Almanac Summary (part %d) ===\n", l.summary.Part)
	fmt.Fprintf(l.writer, "Input: %s\n", l.summary.InputFile)
	fmt.Fprintf(l.writer, "Seed mode: %s\n", l.summary.SeedMode)
	fmt.Fprintf(l.writer, "Seed intervals: %d\n", l.summary.SeedIntervals)

	for _, entry := range l.entries {
		fmt.Fprintf(l.writer, "  %d. %-24s %3d rules  %5d -> %-5d intervals  min %d\n",
			entry.Index, stageLabel(entry), entry.Rules, entry.IntervalsIn, entry.IntervalsOut, entry.MinimumStart)
	}

	fmt.Fprintf(l.writer, "Final intervals: %d\n", l.summary.FinalIntervals)
	fmt.Fprintf(l.writer, "Covered length: %d\n", l.summary.CoveredLength)
	fmt.Fprintf(l.writer, "Answer: %d\n", l.summary.Answer)
	fmt.Fprintf(l.writer, "Processing time: %v\n", l.summary.ProcessingTime)

	return nil
}

func stageLabel(entry Entry) string {
	if entry.Stage == "" {
		return fmt.Sprintf("stage %d", entry.Index)
	}
	return entry.Stage
}

// Close releases the report file, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
