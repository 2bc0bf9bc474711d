package stopwatch

import (
	"fmt"
	"time"
)

// ZeroLabel is the display string for a stopwatch with no accumulated time.
const ZeroLabel = "00:00:00"

// State is the persisted portion of the stopwatch. A nil instant means the
// value is absent.
type State struct {
	Counting  bool
	StartTime *time.Time
	StopTime  *time.Time
}

// ComputeElapsed returns the time accumulated by s as seen at now.
//
// A running stopwatch measures from StartTime. A stopped one projects the
// instant it would have been restarted at and measures from there, which
// works out to StopTime - StartTime.
func ComputeElapsed(s State, now time.Time) time.Duration {
	if s.StartTime == nil {
		return 0
	}
	if s.Counting {
		return now.Sub(*s.StartTime)
	}
	if s.StopTime == nil {
		return 0
	}
	diff := s.StartTime.Sub(*s.StopTime)
	restart := now.Add(diff)
	return now.Sub(restart)
}

// FormatElapsed renders whole seconds as HH:MM:SS. The hour field grows
// past two digits instead of wrapping.
func FormatElapsed(elapsed int) string {
	if elapsed < 0 {
		elapsed = 0
	}
	hours := elapsed / 3600
	minutes := (elapsed % 3600) / 60
	seconds := elapsed % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatDuration truncates d to whole seconds and formats it.
func FormatDuration(d time.Duration) string {
	return FormatElapsed(int(d / time.Second))
}
