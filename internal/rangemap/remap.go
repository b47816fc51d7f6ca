package rangemap

// ApplyRule splits iv against the rule's source range. The overlapping piece,
// shifted to the destination, is returned as transformed; the pieces before
// and after the source range are returned unchanged in unmapped. When iv does
// not touch the source range, transformed is nil and unmapped holds iv.
func ApplyRule(iv Interval, rule Rule) (transformed *Interval, unmapped []Interval) {
	ruleEnd := rule.SourceEnd()
	if iv.End() < rule.SourceStart || iv.Start > ruleEnd {
		return nil, []Interval{iv}
	}

	if iv.Start < rule.SourceStart {
		unmapped = append(unmapped, Interval{
			Start:  iv.Start,
			Length: rule.SourceStart - iv.Start,
		})
	}
	if iv.End() > ruleEnd {
		unmapped = append(unmapped, Interval{
			Start:  ruleEnd + 1,
			Length: iv.End() - ruleEnd,
		})
	}

	overlapStart := max(iv.Start, rule.SourceStart)
	overlapEnd := min(iv.End(), ruleEnd)

	return &Interval{
		Start:  rule.DestinationStart + (overlapStart - rule.SourceStart),
		Length: overlapEnd - overlapStart + 1,
	}, unmapped
}

// ApplyStage maps every interval through the stage. Each rule is tried
// against the pieces no earlier rule has claimed; a transformed piece is
// final for this stage. Pieces left over after the last rule pass through
// unchanged.
func ApplyStage(intervals []Interval, stage Stage) []Interval {
	result := make([]Interval, 0, len(intervals))
	pending := append([]Interval(nil), intervals...)

	for _, rule := range stage.Rules {
		next := make([]Interval, 0, len(pending))
		for _, iv := range pending {
			transformed, unmapped := ApplyRule(iv, rule)
			if transformed != nil {
				result = append(result, *transformed)
			}
			next = append(next, unmapped...)
		}
		pending = next
	}

	return append(result, pending...)
}

// Run threads the seed set through every stage in order and returns the
// final set.
func Run(seeds []Interval, stages []Stage) []Interval {
	current := seeds
	for _, stage := range stages {
		current = ApplyStage(current, stage)
	}
	return current
}

// MinimumStart returns the lowest Start in the set. ok is false for an empty
// set, which has no minimum.
func MinimumStart(intervals []Interval) (minimum uint64, ok bool) {
	if len(intervals) == 0 {
		return 0, false
	}
	minimum = intervals[0].Start
	for _, iv := range intervals[1:] {
		minimum = min(minimum, iv.Start)
	}
	return minimum, true
}
