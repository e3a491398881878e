package rain

import (
	"sync"
	"time"
)

// Scheduler invokes fn repeatedly, roughly every interval, until the
// returned cancel func is called. Implementations never run two
// invocations of the same fn concurrently and never replay missed ones.
// Cancel is idempotent and returns only after any running fn has finished,
// so it must not be called from inside fn.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// IntervalScheduler runs each registration on its own goroutine driven by a
// time.Ticker. A tick that takes longer than the interval causes the ticker
// to drop the missed deadlines.
type IntervalScheduler struct{}

// Every implements Scheduler.
func (IntervalScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// stop wins over a tick that became ready at the same time
				select {
				case <-stop:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stop) })
		<-done
	}
}

// FrameScheduler is driven by a host frame loop such as Ebitengine's Update.
// Each Advance call adds the frame time to every registration and fires those
// that reached their interval, at most once per call.
type FrameScheduler struct {
	runMu   sync.Mutex // held while due registrations run
	mu      sync.Mutex
	entries []*frameEntry
}

type frameEntry struct {
	interval time.Duration
	acc      time.Duration
	fn       func()
	canceled bool
}

// NewFrameScheduler creates an empty frame scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Every implements Scheduler.
func (s *FrameScheduler) Every(interval time.Duration, fn func()) func() {
	e := &frameEntry{interval: interval, fn: fn}

	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()

	return func() {
		s.runMu.Lock()
		defer s.runMu.Unlock()
		s.mu.Lock()
		defer s.mu.Unlock()
		e.canceled = true
		for i, other := range s.entries {
			if other == e {
				s.entries = append(s.entries[:i], s.entries[i+1:]...)
				break
			}
		}
	}
}

// Advance accounts elapsed frame time and runs due registrations in
// registration order. Time beyond one interval is discarded.
func (s *FrameScheduler) Advance(elapsed time.Duration) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.Lock()
	due := make([]*frameEntry, 0, len(s.entries))
	for _, e := range s.entries {
		e.acc += elapsed
		if e.acc < e.interval {
			continue
		}
		e.acc -= e.interval
		if e.acc >= e.interval {
			e.acc = 0
		}
		due = append(due, e)
	}
	s.mu.Unlock()

	for _, e := range due {
		s.run(e)
	}
}

func (s *FrameScheduler) run(e *frameEntry) {
	s.mu.Lock()
	canceled := e.canceled
	s.mu.Unlock()
	if !canceled {
		e.fn()
	}
}

// Len returns the number of active registrations.
func (s *FrameScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
