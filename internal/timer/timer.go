package timer

import (
	"sync"
	"time"
)

// Ticker is a repeating tick source. Its goroutine never runs the callback
// directly: every tick is sent on out as a closure, and whoever drains out
// (the UI loop) runs it. A closure belonging to a cancelled or replaced
// source does nothing when run.
type Ticker struct {
	mu       sync.Mutex
	out      chan<- func()
	running  bool
	gen      uint64
	stopChan chan struct{}
}

func New(out chan<- func()) *Ticker {
	return &Ticker{
		out:      out,
		stopChan: make(chan struct{}),
	}
}

// Start replaces any active source with one firing fn every interval.
func (t *Ticker) Start(interval time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelLocked()

	t.running = true
	t.gen++
	gen := t.gen
	stop := make(chan struct{})
	t.stopChan = stop

	fire := func() {
		t.mu.Lock()
		live := t.running && t.gen == gen
		t.mu.Unlock()
		if live {
			fn()
		}
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case <-stop:
					return
				case t.out <- fire:
				}
			}
		}
	}()
}

func (t *Ticker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

func (t *Ticker) cancelLocked() {
	if !t.running {
		return
	}
	t.running = false
	close(t.stopChan)
	t.stopChan = make(chan struct{})
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
