package rain

import (
	"errors"
	"sync"
)

// ErrRunning is returned by Slot.Launch while the held session still runs.
var ErrRunning = errors.New("rain: animation already running")

// Slot holds at most one running session, for hosts that expose start and
// stop entry points to outside callers.
type Slot struct {
	mu      sync.Mutex
	session *Session
}

// Launch calls start and keeps the resulting session, unless the slot
// already holds one that has not been stopped.
func (s *Slot) Launch(start func() (*Session, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil && !s.session.Stopped() {
		return ErrRunning
	}

	session, err := start()
	if err != nil {
		return err
	}
	s.session = session
	return nil
}

// Stop stops the held session, if any, and empties the slot.
func (s *Slot) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.session.Stop()
		s.session = nil
	}
}

// Session returns the held session or nil.
func (s *Slot) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}
