package timeline

import "fmt"

// DurationTolerance is the allowed deviation, in seconds, between the sum of
// beat durations and the target duration.
const DurationTolerance = 5

// ValidationReport is the outcome of checking beat timing against a target.
// It never represents a hard failure; the caller decides what to do with it.
type ValidationReport struct {
	Valid          bool     `json:"valid"`
	TotalDuration  int      `json:"total_duration"`
	TargetDuration int      `json:"target_duration"`
	Difference     int      `json:"difference"`
	Issues         []string `json:"issues"`
}

// Validate checks that the spans cover the target duration within tolerance
// and that adjacent spans are contiguous. Validity is decided by the duration
// tolerance alone; gaps between adjacent spans are reported as issues but do
// not invalidate the result. Comparison is on numeric offsets, not rendered
// timecodes.
func Validate(spans []Span, targetDuration int) ValidationReport {
	total := 0
	for _, s := range spans {
		total += s.Duration()
	}

	diff := total - targetDuration
	issues := []string{}
	valid := true
	if diff > DurationTolerance || diff < -DurationTolerance {
		valid = false
		issues = append(issues, fmt.Sprintf(
			"total duration %ds outside tolerance of %ds ±%ds", total, targetDuration, DurationTolerance))
	}

	for i := 0; i < len(spans)-1; i++ {
		if spans[i].End != spans[i+1].Start {
			issues = append(issues, fmt.Sprintf("gap between beat %d and %d", i+1, i+2))
		}
	}

	return ValidationReport{
		Valid:          valid,
		TotalDuration:  total,
		TargetDuration: targetDuration,
		Difference:     diff,
		Issues:         issues,
	}
}
