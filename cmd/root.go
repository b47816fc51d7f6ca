package cmd

import (
	"fmt"
	"os"
	"strconv"

	"almanac/internal/config"
	"almanac/internal/errors"
	"almanac/internal/output"

	"github.com/spf13/cobra"
)

type options struct {
	configFile   string
	format       string
	reportFormat config.ReportFormat
	reportFile   string
	color        config.ColorMode
	check        bool
	verbose      bool
	debug        bool
	quiet        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "almanac <part> [input_file]",
		Short: "Find the lowest location reachable from an almanac's seeds",
		Long: `Almanac reads a seed almanac, pushes its seeds through every mapping stage
and prints the lowest resulting value. Part 1 treats each seed number as a
single seed; part 2 treats the numbers as (start, length) ranges.

The input file defaults to "input" and may be in the puzzle's text format,
JSON or YAML.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			return executeSolve(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "YAML config file")
	flags.StringVarP(&opts.format, "format", "f", "", "Input format (text, json, yaml; default: by extension)")
	flags.Var((*reportFormatFlag)(&opts.reportFormat), "report", "Write a run report (text, json, csv)")
	flags.StringVar(&opts.reportFile, "report-file", "", "Report file (default: stdout)")
	flags.Var((*colorFlag)(&opts.color), "color", "Colour output (auto, always, never)")
	flags.BoolVar(&opts.check, "check", false, "Verify that every stage conserves covered length")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVar(&opts.debug, "debug", false, "Debug mode")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Quiet mode")

	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.MarkFlagsMutuallyExclusive("debug", "quiet")

	return cmd
}

// Execute runs the root command and handles top-level error reporting.
// Errors are printed with their full cause chain and exit the process with
// status 1.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		mode, _ := cmd.Flags().GetString("color")
		output.NewPrinter(os.Stdout, os.Stderr, config.ColorMode(mode)).Error(err)
		os.Exit(1)
	}
}

// resolve builds the run configuration: config file and environment first,
// then the flags the user actually set, then the positional arguments.
func (o *options) resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}

	part, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("invalid part number %q: use 1 or 2", args[0]), err)
	}
	cfg.Part = part

	if len(args) > 1 {
		cfg.InputFile = args[1]
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("report") {
		cfg.ReportFormat = o.reportFormat
	}
	if flags.Changed("report-file") {
		cfg.ReportFile = o.reportFile
	}
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	if flags.Changed("check") {
		cfg.Check = o.check
	}
	if flags.Changed("verbose") {
		cfg.Verbose = o.verbose
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	if flags.Changed("quiet") {
		cfg.Quiet = o.quiet
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type reportFormatFlag config.ReportFormat

func (f *reportFormatFlag) String() string {
	return string(*f)
}

func (f *reportFormatFlag) Set(v string) error {
	switch config.ReportFormat(v) {
	case config.ReportText, config.ReportJSON, config.ReportCSV:
		*f = reportFormatFlag(v)
		return nil
	default:
		return fmt.Errorf("must be 'text', 'json' or 'csv'")
	}
}

func (f *reportFormatFlag) Type() string {
	return "string"
}

type colorFlag config.ColorMode

func (f *colorFlag) String() string {
	return string(*f)
}

func (f *colorFlag) Set(v string) error {
	switch config.ColorMode(v) {
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
		*f = colorFlag(v)
		return nil
	default:
		return fmt.Errorf("must be 'auto', 'always' or 'never'")
	}
}

func (f *colorFlag) Type() string {
	return "string"
}
