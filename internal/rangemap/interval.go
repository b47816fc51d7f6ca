// Package rangemap remaps sets of integer intervals through ordered stages of
// offset rules. A stage splits every interval against its rules' source
// ranges, shifts the overlapping pieces and passes everything else through
// unchanged, so the total covered length never changes.
package rangemap

import "fmt"

// Interval is a contiguous run of values starting at Start. Length is always
// positive for intervals produced by this package.
type Interval struct {
	Start  uint64 `json:"start"`
	Length uint64 `json:"length"`
}

// End returns the last value covered by the interval (inclusive).
func (iv Interval) End() uint64 {
	return iv.Start + iv.Length - 1
}

// Contains reports whether v lies inside the interval.
func (iv Interval) Contains(v uint64) bool {
	return v >= iv.Start && v <= iv.End()
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d..%d]", iv.Start, iv.End())
}

// Rule shifts the source range [SourceStart, SourceStart+Length) onto the
// range starting at DestinationStart.
type Rule struct {
	DestinationStart uint64 `json:"destination" yaml:"destination"`
	SourceStart      uint64 `json:"source" yaml:"source"`
	Length           uint64 `json:"length" yaml:"length"`
}

// SourceEnd returns the last source value covered by the rule (inclusive).
func (r Rule) SourceEnd() uint64 {
	return r.SourceStart + r.Length - 1
}

// Source returns the rule's source range as an interval.
func (r Rule) Source() Interval {
	return Interval{Start: r.SourceStart, Length: r.Length}
}

// Offset returns the signed shift applied to values matched by the rule.
func (r Rule) Offset() int64 {
	return int64(r.DestinationStart - r.SourceStart)
}

// Stage is one transformation layer. Values not covered by any rule map to
// themselves.
type Stage struct {
	Name  string `json:"name" yaml:"name"`
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Overlaps returns the indexes of the first two rules whose source ranges
// intersect. ok is false when every rule claims distinct source values.
func (s Stage) Overlaps() (i, j int, ok bool) {
	for i = 0; i < len(s.Rules); i++ {
		for j = i + 1; j < len(s.Rules); j++ {
			a, b := s.Rules[i], s.Rules[j]
			if a.SourceStart <= b.SourceEnd() && b.SourceStart <= a.SourceEnd() {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// TotalLength sums the lengths of every interval in the set.
func TotalLength(intervals []Interval) uint64 {
	var total uint64
	for _, iv := range intervals {
		total += iv.Length
	}
	return total
}
