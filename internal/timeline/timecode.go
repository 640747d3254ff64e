package timeline

import "fmt"

// FormatTimecode renders a second offset as an HH:MM:SS:FF timecode with a
// zero frame field. Presentation only; all comparisons are done on the
// numeric offsets.
func FormatTimecode(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d:00", h, m, s)
}
