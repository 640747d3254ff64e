package timeline

import "fmt"

// Cumulative boundaries of the eight-part structure as fractions of the total
// duration: hook 0-5%, inciting event 5-12%, first plot point 12-25%,
// first pinch point 25-37%, midpoint 37-50%, second pinch point 50-62%,
// third plot point 62-75%, climax 75-100%.
var boundaries = []float64{0, 0.05, 0.12, 0.25, 0.37, 0.50, 0.62, 0.75}

// minHookSeconds guarantees a non-empty hook even for very short videos.
const minHookSeconds = 3

// Allocate splits a total duration into the eight fixed narrative spans,
// truncating fractional boundaries to whole seconds. The hook end is floored
// to at least three seconds, and the climax always ends at the total duration.
// Spans that collapse to zero or negative length for short durations are
// returned as-is; downstream consumers skip them.
func Allocate(durationSeconds int) ([]Span, error) {
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("allocate timing: duration must be positive, got %d", durationSeconds)
	}

	segments := Segments()
	spans := make([]Span, 0, len(segments))
	for i, seg := range segments {
		start := int(float64(durationSeconds) * boundaries[i])
		var end int
		if i == len(segments)-1 {
			end = durationSeconds
		} else {
			end = int(float64(durationSeconds) * boundaries[i+1])
		}
		if seg == SegmentHook && end < minHookSeconds {
			end = minHookSeconds
		}
		spans = append(spans, Span{Segment: seg, Start: start, End: end})
	}

	return spans, nil
}

// Breakdown maps each segment to its [start, end] pair, including collapsed
// spans. Used for the script's structural metadata.
func Breakdown(spans []Span) map[Segment][2]int {
	out := make(map[Segment][2]int, len(spans))
	for _, s := range spans {
		out[s.Segment] = [2]int{s.Start, s.End}
	}
	return out
}
