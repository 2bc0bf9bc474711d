package stopwatch

import (
	"sync"
	"time"
)

// Store persists the three stopwatch fields. Absent values are reported as
// nil instants or false, not as errors.
type Store interface {
	Counting() (bool, error)
	SetCounting(counting bool) error
	StartTime() (*time.Time, error)
	SetStartTime(t *time.Time) error
	StopTime() (*time.Time, error)
	SetStopTime(t *time.Time) error
}

// Scheduler drives the periodic refresh. Start replaces any active tick
// source; Cancel is a no-op when nothing is running.
type Scheduler interface {
	Start(interval time.Duration, fn func())
	Cancel()
}

// Clock provides a testable time source.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// MemoryStore keeps state in process memory. It stands in for the durable
// store when that cannot be opened.
type MemoryStore struct {
	mu        sync.Mutex
	counting  bool
	startTime *time.Time
	stopTime  *time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Counting() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counting, nil
}

func (s *MemoryStore) SetCounting(counting bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counting = counting
	return nil
}

func (s *MemoryStore) StartTime() (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTime(s.startTime), nil
}

func (s *MemoryStore) SetStartTime(t *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startTime = copyTime(t)
	return nil
}

func (s *MemoryStore) StopTime() (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyTime(s.stopTime), nil
}

func (s *MemoryStore) SetStopTime(t *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTime = copyTime(t)
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
