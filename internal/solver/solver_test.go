package solver

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	almanacerrors "almanac/internal/errors"
	"almanac/internal/parser"
	"almanac/internal/rangemap"
)

func loadSample(t *testing.T, name string) *parser.Almanac {
	t.Helper()
	almanac, err := parser.LoadAlmanac(filepath.Join("../../testdata", name), "")
	if err != nil {
		t.Fatalf("loading %s: %v", name, err)
	}
	return almanac
}

func TestSolveSample(t *testing.T) {
	tests := []struct {
		file     string
		part     int
		expected uint64
	}{
		{"sample.txt", 1, 35},
		{"sample.txt", 2, 46},
		{"sample.json", 1, 35},
		{"sample.json", 2, 46},
		{"sample.yaml", 1, 35},
		{"sample.yaml", 2, 46},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := Solve(loadSample(t, tt.file), tt.part, rangemap.NewEngine(rangemap.ConservationCheck))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Answer != tt.expected {
				t.Errorf("part %d: expected %d, got %d", tt.part, tt.expected, result.Answer)
			}
			if rangemap.TotalLength(result.Final) != rangemap.TotalLength(result.Seeds) {
				t.Errorf("covered length changed: %d -> %d", rangemap.TotalLength(result.Seeds), rangemap.TotalLength(result.Final))
			}
		})
	}
}

func TestSolveWithoutEngine(t *testing.T) {
	result, err := Solve(loadSample(t, "sample.txt"), 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Answer != 46 || result.Mode != SeedRanges {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestSolveInvalidPart(t *testing.T) {
	_, err := Solve(loadSample(t, "sample.txt"), 3, nil)

	var ce *almanacerrors.ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("expected ConfigError, got %v", err)
	}
}

func TestSeeds(t *testing.T) {
	tests := []struct {
		name        string
		numbers     []uint64
		mode        SeedMode
		expected    []rangemap.Interval
		expectInMsg string
	}{
		{
			name:     "points",
			numbers:  []uint64{79, 14, 55, 13},
			mode:     SeedPoints,
			expected: []rangemap.Interval{{Start: 79, Length: 1}, {Start: 14, Length: 1}, {Start: 55, Length: 1}, {Start: 13, Length: 1}},
		},
		{
			name:     "ranges",
			numbers:  []uint64{79, 14, 55, 13},
			mode:     SeedRanges,
			expected: []rangemap.Interval{{Start: 79, Length: 14}, {Start: 55, Length: 13}},
		},
		{
			name:        "odd count",
			numbers:     []uint64{79, 14, 55},
			mode:        SeedRanges,
			expectInMsg: "even count",
		},
		{
			name:        "zero length pair",
			numbers:     []uint64{79, 0},
			mode:        SeedRanges,
			expectInMsg: "zero length",
		},
		{
			name:        "overflowing pair",
			numbers:     []uint64{1<<64 - 1, 2},
			mode:        SeedRanges,
			expectInMsg: "exceeds",
		},
		{
			name:        "empty",
			numbers:     nil,
			mode:        SeedPoints,
			expectInMsg: "no seeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Seeds(tt.numbers, tt.mode)

			if tt.expectInMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectInMsg) {
					t.Errorf("expected error containing %q, got %v", tt.expectInMsg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("seeds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModeForPart(t *testing.T) {
	if m, err := ModeForPart(1); err != nil || m != SeedPoints {
		t.Errorf("part 1: got %v, %v", m, err)
	}
	if m, err := ModeForPart(2); err != nil || m != SeedRanges {
		t.Errorf("part 2: got %v, %v", m, err)
	}
	if _, err := ModeForPart(0); err == nil {
		t.Error("expected error for part 0")
	}
	if SeedRanges.String() != "ranges" || SeedPoints.String() != "points" {
		t.Error("unexpected mode names")
	}
}
