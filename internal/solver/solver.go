// Package solver turns a parsed almanac into an answer. Part 1 reads the
// seed numbers as individual points, part 2 as (start, length) pairs; both
// become a rangemap interval set before the stages run.
package solver

import (
	"fmt"
	"math"

	"almanac/internal/errors"
	"almanac/internal/parser"
	"almanac/internal/rangemap"
)

// SeedMode selects how the seed numbers are read.
type SeedMode int

const (
	// SeedPoints reads every number as a single-value interval.
	SeedPoints SeedMode = iota
	// SeedRanges reads the numbers as (start, length) pairs.
	SeedRanges
)

func (m SeedMode) String() string {
	switch m {
	case SeedPoints:
		return "points"
	case SeedRanges:
		return "ranges"
	default:
		return fmt.Sprintf("SeedMode(%d)", int(m))
	}
}

// ModeForPart returns the seed mode used by a puzzle part.
func ModeForPart(part int) (SeedMode, error) {
	switch part {
	case 1:
		return SeedPoints, nil
	case 2:
		return SeedRanges, nil
	default:
		return 0, errors.NewConfigError(fmt.Sprintf("invalid part %d: use 1 or 2", part), nil)
	}
}

// Seeds builds the starting interval set from the raw seed numbers.
func Seeds(numbers []uint64, mode SeedMode) ([]rangemap.Interval, error) {
	if len(numbers) == 0 {
		return nil, errors.NewValidationError("", "no seeds listed")
	}

	switch mode {
	case SeedPoints:
		seeds := make([]rangemap.Interval, 0, len(numbers))
		for _, n := range numbers {
			seeds = append(seeds, rangemap.Interval{Start: n, Length: 1})
		}
		return seeds, nil

	case SeedRanges:
		if len(numbers)%2 != 0 {
			return nil, errors.NewValidationError("", fmt.Sprintf("seed ranges need an even count of numbers, got %d", len(numbers)))
		}
		seeds := make([]rangemap.Interval, 0, len(numbers)/2)
		for i := 0; i < len(numbers); i += 2 {
			start, length := numbers[i], numbers[i+1]
			if length == 0 {
				return nil, errors.NewValidationError("", fmt.Sprintf("seed range %d starting at %d has zero length", i/2+1, start))
			}
			if length-1 > math.MaxUint64-start {
				return nil, errors.NewValidationError("", fmt.Sprintf("seed range %d starting at %d exceeds %d", i/2+1, start, uint64(math.MaxUint64)))
			}
			seeds = append(seeds, rangemap.Interval{Start: start, Length: length})
		}
		return seeds, nil

	default:
		return nil, errors.NewConfigError(fmt.Sprintf("unknown seed mode %v", mode), nil)
	}
}

// Result is the outcome of solving one part.
type Result struct {
	Part   int
	Mode   SeedMode
	Answer uint64
	Seeds  []rangemap.Interval
	Final  []rangemap.Interval
}

// Solve runs the almanac's stages for the given part and returns the lowest
// final value. A nil engine runs without middleware.
func Solve(almanac *parser.Almanac, part int, engine *rangemap.Engine) (*Result, error) {
	mode, err := ModeForPart(part)
	if err != nil {
		return nil, err
	}

	seeds, err := Seeds(almanac.Seeds, mode)
	if err != nil {
		return nil, err
	}

	if engine == nil {
		engine = rangemap.NewEngine()
	}
	final, err := engine.Run(seeds, almanac.Stages)
	if err != nil {
		return nil, err
	}

	answer, ok := rangemap.MinimumStart(final)
	if !ok {
		return nil, errors.NewValidationError("", "remapping produced no intervals")
	}

	return &Result{
		Part:   part,
		Mode:   mode,
		Answer: answer,
		Seeds:  seeds,
		Final:  final,
	}, nil
}
