// Package cmd implements the command-line interface and orchestration logic for almanac.
// It connects configuration, parsing, the remapping engine, reporting and
// terminal output.
package cmd

import (
	"io"
	"time"

	"almanac/internal/config"
	"almanac/internal/log"
	"almanac/internal/output"
	"almanac/internal/parser"
	"almanac/internal/rangemap"
	"almanac/internal/solver"
)

func executeSolve(cfg *config.Config, stdout, stderr io.Writer) error {
	startTime := time.Now()
	diag := log.NewDiagnostic(cfg, stderr)

	almanac, err := parser.LoadAlmanac(cfg.InputFile, parser.Format(cfg.Format))
	if err != nil {
		return err
	}
	diag.Info().
		Str("input", cfg.InputFile).
		Int("seeds", len(almanac.Seeds)).
		Int("stages", len(almanac.Stages)).
		Msg("almanac loaded")

	logger, err := log.NewLogger(cfg, stdout, diag)
	if err != nil {
		return err
	}
	defer logger.Close()

	engine := rangemap.NewEngine()
	if cfg.Check {
		engine.Use(rangemap.ConservationCheck)
	}
	engine.Use(logger.Middleware())

	result, err := solver.Solve(almanac, cfg.Part, engine)
	if err != nil {
		return err
	}

	logger.SetResult(result)
	logger.SetProcessingTime(time.Since(startTime))

	output.NewPrinter(stdout, stderr, cfg.Color).Solution(result.Answer)
	return logger.WriteReport()
}
