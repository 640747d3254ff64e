package timeline

// Segment identifies one of the eight fixed narrative positions used to
// structure a video. The set is closed; Segments returns it in story order.
type Segment string

const (
	SegmentHook             Segment = "hook"
	SegmentIncitingEvent    Segment = "inciting_event"
	SegmentFirstPlotPoint   Segment = "first_plot_point"
	SegmentFirstPinchPoint  Segment = "first_pinch_point"
	SegmentMidpoint         Segment = "midpoint"
	SegmentSecondPinchPoint Segment = "second_pinch_point"
	SegmentThirdPlotPoint   Segment = "third_plot_point"
	SegmentClimax           Segment = "climax"
)

// Segments returns all eight segments in narrative order.
func Segments() []Segment {
	return []Segment{
		SegmentHook,
		SegmentIncitingEvent,
		SegmentFirstPlotPoint,
		SegmentFirstPinchPoint,
		SegmentMidpoint,
		SegmentSecondPinchPoint,
		SegmentThirdPlotPoint,
		SegmentClimax,
	}
}

// Valid reports whether s is one of the eight known segments.
func (s Segment) Valid() bool {
	switch s {
	case SegmentHook, SegmentIncitingEvent, SegmentFirstPlotPoint, SegmentFirstPinchPoint,
		SegmentMidpoint, SegmentSecondPinchPoint, SegmentThirdPlotPoint, SegmentClimax:
		return true
	}
	return false
}

// Span is the time window a segment occupies within the total duration.
// End is exclusive; Start and End are offsets in whole seconds.
type Span struct {
	Segment Segment `json:"segment"`
	Start   int     `json:"start_seconds"`
	End     int     `json:"end_seconds"`
}

// Duration returns the span length in seconds. Spans produced for very short
// total durations can be zero or negative; consumers drop those.
func (s Span) Duration() int {
	return s.End - s.Start
}
