package stopwatch

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval is the refresh period of a running stopwatch.
const DefaultInterval = 100 * time.Millisecond

// Controller owns the stopwatch state and the derived label. It is not safe
// for concurrent use: every method, including the tick callback, must run on
// the UI goroutine.
type Controller struct {
	store     Store
	scheduler Scheduler
	clock     Clock
	log       zerolog.Logger
	interval  time.Duration

	counting  bool
	startTime *time.Time
	stopTime  *time.Time
	label     string
}

type Option func(*Controller)

func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(ctl *Controller) { ctl.log = l }
}

func WithInterval(d time.Duration) Option {
	return func(ctl *Controller) {
		if d > 0 {
			ctl.interval = d
		}
	}
}

func New(store Store, scheduler Scheduler, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		scheduler: scheduler,
		clock:     SystemClock{},
		log:       zerolog.Nop(),
		interval:  DefaultInterval,
		label:     ZeroLabel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnAppear loads persisted state. A stopwatch that was still counting when
// the previous session ended is stopped at the current instant rather than
// resumed.
func (c *Controller) OnAppear() {
	c.load()

	if c.counting {
		c.setStopTime(c.now())
		c.StopTimer()
		ev := c.log.Info()
		if c.startTime != nil {
			ev = ev.Time("start_time", *c.startTime)
		}
		ev.Msg("stopwatch was running at last exit, stopped on reopen")
		return
	}

	c.StopTimer()
	if c.startTime != nil && c.stopTime != nil {
		c.label = FormatDuration(ComputeElapsed(c.State(), c.clock.Now()))
	}
}

// StartStop toggles the stopwatch. Resuming keeps the time accumulated
// before the last stop.
func (c *Controller) StartStop() {
	if c.counting {
		c.setStopTime(c.now())
		c.StopTimer()
		c.log.Debug().Str("label", c.label).Msg("stopwatch stopped")
		return
	}

	now := c.clock.Now()
	if c.startTime != nil && c.stopTime != nil {
		diff := c.startTime.Sub(*c.stopTime)
		restart := now.Add(diff)
		c.setStopTime(nil)
		c.setStartTime(&restart)
	} else {
		c.setStartTime(&now)
	}
	c.StartTimer()
	c.log.Debug().Time("start_time", *c.startTime).Msg("stopwatch started")
}

// StartTimer registers the refresh tick and marks the stopwatch as counting.
func (c *Controller) StartTimer() {
	c.scheduler.Start(c.interval, c.RefreshValue)
	c.setCounting(true)
}

// RefreshValue is the tick handler. With no start instant the tick source
// stops itself, which is how a Reset during a run settles.
func (c *Controller) RefreshValue() {
	if c.startTime == nil {
		c.StopTimer()
		c.label = ZeroLabel
		return
	}
	c.label = FormatDuration(c.clock.Now().Sub(*c.startTime))
}

// StopTimer cancels the tick and marks the stopwatch as not counting.
func (c *Controller) StopTimer() {
	c.scheduler.Cancel()
	c.setCounting(false)
}

// Reset clears both instants. The counting flag is left alone; a running
// tick notices the missing start instant and stops on its next firing.
func (c *Controller) Reset() {
	c.setStopTime(nil)
	c.setStartTime(nil)
	c.label = ZeroLabel
}

func (c *Controller) Label() string {
	return c.label
}

func (c *Controller) Counting() bool {
	return c.counting
}

// State returns a copy of the current persisted fields.
func (c *Controller) State() State {
	return State{
		Counting:  c.counting,
		StartTime: copyTime(c.startTime),
		StopTime:  copyTime(c.stopTime),
	}
}

func (c *Controller) now() *time.Time {
	now := c.clock.Now()
	return &now
}

func (c *Controller) load() {
	counting, err := c.store.Counting()
	if err != nil {
		c.log.Warn().Err(err).Str("key", "counting").Msg("failed to load state, using default")
		counting = false
	}
	start, err := c.store.StartTime()
	if err != nil {
		c.log.Warn().Err(err).Str("key", "startTime").Msg("failed to load state, using default")
		start = nil
	}
	stop, err := c.store.StopTime()
	if err != nil {
		c.log.Warn().Err(err).Str("key", "stopTime").Msg("failed to load state, using default")
		stop = nil
	}
	c.counting = counting
	c.startTime = start
	c.stopTime = stop
}

func (c *Controller) setStartTime(t *time.Time) {
	c.startTime = copyTime(t)
	if err := c.store.SetStartTime(t); err != nil {
		c.log.Warn().Err(err).Str("key", "startTime").Msg("failed to persist state")
	}
}

func (c *Controller) setStopTime(t *time.Time) {
	c.stopTime = copyTime(t)
	if err := c.store.SetStopTime(t); err != nil {
		c.log.Warn().Err(err).Str("key", "stopTime").Msg("failed to persist state")
	}
}

func (c *Controller) setCounting(counting bool) {
	c.counting = counting
	if err := c.store.SetCounting(counting); err != nil {
		c.log.Warn().Err(err).Str("key", "counting").Msg("failed to persist state")
	}
}
