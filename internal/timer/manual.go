package timer

import "time"

// Manual is a tick source driven by calls to Fire. It lets tests step a
// running stopwatch without waiting on the wall clock.
type Manual struct {
	fn       func()
	interval time.Duration
	starts   int
	cancels  int
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Start(interval time.Duration, fn func()) {
	m.Cancel()
	m.fn = fn
	m.interval = interval
	m.starts++
}

func (m *Manual) Cancel() {
	if m.fn == nil {
		return
	}
	m.fn = nil
	m.cancels++
}

// Fire runs the active callback once and reports whether one was registered.
func (m *Manual) Fire() bool {
	if m.fn == nil {
		return false
	}
	m.fn()
	return true
}

func (m *Manual) Active() bool { return m.fn != nil }

func (m *Manual) Interval() time.Duration { return m.interval }

// Starts counts registrations; Cancels counts sources actually torn down.
func (m *Manual) Starts() int  { return m.starts }
func (m *Manual) Cancels() int { return m.cancels }
