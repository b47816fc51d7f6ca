// Package parser provides functionality for loading and parsing almanacs.
// It supports the puzzle's text format as well as JSON and YAML documents,
// converting them into seed numbers and ordered rangemap stages, and
// validates the result before any remapping happens.
package parser

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"almanac/internal/errors"
	"almanac/internal/input"
	"almanac/internal/rangemap"
)

// Format identifies an almanac file format.
type Format string

// Supported almanac formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const seedsPrefix = "seeds:"

// Almanac is a parsed input document: the raw seed numbers and the stages
// in the order they appear in the file.
type Almanac struct {
	Seeds  []uint64         `json:"seeds" yaml:"seeds"`
	Stages []rangemap.Stage `json:"stages" yaml:"stages"`
}

// DetectFormat picks a format from the file extension. Anything that is not
// JSON or YAML is read as the text format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// LoadAlmanac loads, parses and validates the almanac at path. An empty
// format is resolved with DetectFormat.
func LoadAlmanac(path string, format Format) (*Almanac, error) {
	if format == "" {
		format = DetectFormat(path)
	}

	content, err := input.ReadString(path)
	if err != nil {
		return nil, err
	}

	var almanac *Almanac
	switch format {
	case FormatText:
		almanac, err = ParseText(content, path)
	case FormatJSON:
		almanac, err = parseJSON(content, path)
	case FormatYAML:
		almanac, err = parseYAML(content, path)
	default:
		return nil, errors.NewParsingError(path, fmt.Sprintf("unsupported format: %s", format), nil)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(almanac, path); err != nil {
		return nil, err
	}
	return almanac, nil
}

// ParseText parses the puzzle format: a "seeds:" paragraph followed by one
// paragraph per stage, each starting with a label line such as
// "seed-to-soil map:" and continuing with "destination source length" lines.
func ParseText(content, path string) (*Almanac, error) {
	paragraphs := input.SplitParagraphs(content)
	if len(paragraphs) == 0 {
		return nil, errors.NewEmptyInputError(path)
	}

	seeds, err := parseSeeds(paragraphs[0], path)
	if err != nil {
		return nil, err
	}

	almanac := &Almanac{Seeds: seeds}
	for _, p := range paragraphs[1:] {
		stage, err := parseStage(p, path)
		if err != nil {
			return nil, err
		}
		almanac.Stages = append(almanac.Stages, stage)
	}

	if len(almanac.Stages) == 0 {
		return nil, errors.NewParsingError(path, "no mapping stages found", nil)
	}
	return almanac, nil
}

func parseSeeds(p input.Paragraph, path string) ([]uint64, error) {
	first := p.Lines[0]
	if !strings.HasPrefix(first, seedsPrefix) {
		return nil, errors.NewParsingErrorAt(path, p.Line, fmt.Sprintf("expected %q section, got %q", seedsPrefix, first), nil)
	}

	var seeds []uint64
	for i, line := range p.Lines {
		if i == 0 {
			line = strings.TrimPrefix(line, seedsPrefix)
		}
		numbers, err := parseNumbers(line, p.Line+i, path)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, numbers...)
	}
	return seeds, nil
}

func parseStage(p input.Paragraph, path string) (rangemap.Stage, error) {
	label := p.Lines[0]
	if !strings.HasSuffix(label, ":") {
		return rangemap.Stage{}, errors.NewParsingErrorAt(path, p.Line, fmt.Sprintf("expected stage label ending in ':', got %q", label), nil)
	}

	stage := rangemap.Stage{Name: stageName(label)}
	for i, line := range p.Lines[1:] {
		lineNo := p.Line + i + 1
		numbers, err := parseNumbers(line, lineNo, path)
		if err != nil {
			return rangemap.Stage{}, err
		}
		if len(numbers) != 3 {
			return rangemap.Stage{}, errors.NewParsingErrorAt(path, lineNo,
				fmt.Sprintf("invalid mapping line %q: expected 3 numbers (destination source length), got %d", line, len(numbers)), nil)
		}
		stage.Rules = append(stage.Rules, rangemap.Rule{
			DestinationStart: numbers[0],
			SourceStart:      numbers[1],
			Length:           numbers[2],
		})
	}
	return stage, nil
}

// stageName turns "seed-to-soil map:" into "seed-to-soil".
func stageName(label string) string {
	name := strings.TrimSuffix(label, ":")
	name = strings.TrimSuffix(name, " map")
	return strings.TrimSpace(name)
}

func parseNumbers(line string, lineNo int, path string) ([]uint64, error) {
	fields := strings.Fields(line)
	numbers := make([]uint64, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, errors.NewParsingErrorAt(path, lineNo, fmt.Sprintf("invalid number %q", field), err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func parseJSON(content, path string) (*Almanac, error) {
	decoder := json.NewDecoder(strings.NewReader(content))
	decoder.DisallowUnknownFields()

	var almanac Almanac
	if err := decoder.Decode(&almanac); err != nil {
		return nil, errors.NewParsingError(path, "failed to parse JSON", err)
	}
	if len(almanac.Stages) == 0 {
		return nil, errors.NewParsingError(path, "no mapping stages found in JSON", nil)
	}
	return &almanac, nil
}

func parseYAML(content, path string) (*Almanac, error) {
	decoder := yaml.NewDecoder(strings.NewReader(content))
	decoder.KnownFields(true)

	var almanac Almanac
	if err := decoder.Decode(&almanac); err != nil {
		return nil, errors.NewParsingError(path, "failed to parse YAML", err)
	}
	if len(almanac.Stages) == 0 {
		return nil, errors.NewParsingError(path, "no mapping stages found in YAML", nil)
	}
	return &almanac, nil
}

// Validate checks the invariants the remapper relies on: at least one seed,
// positive rule lengths, rule ranges that fit in uint64, and no two rules
// of a stage claiming the same source value.
func Validate(almanac *Almanac, path string) error {
	if len(almanac.Seeds) == 0 {
		return errors.NewValidationError(path, "no seeds listed")
	}

	for s, stage := range almanac.Stages {
		for r, rule := range stage.Rules {
			if rule.Length == 0 {
				return errors.NewValidationError(path, fmt.Sprintf("%s rule %d: length must be positive", describeStage(s, stage), r+1))
			}
			if overflows(rule.SourceStart, rule.Length) || overflows(rule.DestinationStart, rule.Length) {
				return errors.NewValidationError(path, fmt.Sprintf("%s rule %d: range exceeds %d", describeStage(s, stage), r+1, uint64(math.MaxUint64)))
			}
		}
		if i, j, ok := stage.Overlaps(); ok {
			return errors.NewValidationError(path, fmt.Sprintf("%s: rules %d and %d have overlapping source ranges", describeStage(s, stage), i+1, j+1))
		}
	}
	return nil
}

func overflows(start, length uint64) bool {
	return length-1 > math.MaxUint64-start
}

func describeStage(index int, stage rangemap.Stage) string {
	if stage.Name == "" {
		return fmt.Sprintf("stage %d", index+1)
	}
	return fmt.Sprintf("stage %d (%s)", index+1, stage.Name)
}
