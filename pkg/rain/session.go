// Package rain animates falling rain streaks on a drawable surface.
//
// A Session owns a fixed set of droplets, the surface it draws into and a
// timer registration. Every tick clears the surface, draws each droplet as a
// short line along its velocity, then advances each droplet, recycling the
// ones that left the visible area back above the top edge.
//
// Start configures everything synchronously and returns; ticks are driven by
// the Scheduler afterwards. Stop cancels the timer.
package rain

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/decker502/rain/internal/droplet"
	"github.com/decker502/rain/pkg/config"
)

var errNoSurface = errors.New("no drawable surface")

// Session is one running rain animation.
type Session struct {
	mu sync.Mutex

	surface Surface
	width   float64 // captured at Start, never re-queried
	height  float64

	params   droplet.Params
	droplets []droplet.Droplet
	src      droplet.Source

	ticks   uint64
	cancel  func()
	stopped bool
}

type options struct {
	cfg       *config.RainConfig
	src       droplet.Source
	seed      int64
	hasSeed   bool
	scheduler Scheduler
}

// Option customizes Start.
type Option func(*options)

// WithConfig replaces the compiled-in defaults.
func WithConfig(cfg *config.RainConfig) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithRand injects the random source used for spawning and recycling.
// It takes precedence over WithSeed and the configured seed.
func WithRand(src droplet.Source) Option {
	return func(o *options) { o.src = src }
}

// WithSeed seeds the default random source. Any value, zero included,
// yields the same frame sequence on every run.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithScheduler selects what drives the ticks. The default is IntervalScheduler.
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// Start sets up a session on a surface already sized to width x height device
// pixels and registers its tick with the scheduler.
//
// Any failure is a *SetupError matching ErrSetup; in that case nothing has been
// drawn, allocated or scheduled.
func Start(surface Surface, width, height int, opts ...Option) (*Session, error) {
	o := options{scheduler: IntervalScheduler{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg == nil {
		o.cfg = config.DefaultRainConfig()
	}
	if o.scheduler == nil {
		o.scheduler = IntervalScheduler{}
	}

	if surface == nil {
		return nil, NewSetupError("acquire surface", errNoSurface)
	}
	if width <= 0 || height <= 0 {
		return nil, NewSetupError("size surface", fmt.Errorf("invalid size %dx%d", width, height))
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, NewSetupError("load config", err)
	}
	lineCap, err := ParseLineCap(o.cfg.Stroke.Cap)
	if err != nil {
		return nil, NewSetupError("load config", err)
	}

	src := o.src
	if src == nil {
		seed := o.cfg.Seed
		if o.hasSeed {
			seed = o.seed
		}
		// 0 in the config means "use the clock"; an explicit WithSeed(0) does not
		if seed == 0 && !o.hasSeed {
			seed = time.Now().UnixNano()
		}
		src = rand.New(rand.NewSource(seed))
		log.Printf("[Rain] Random seed: %d", seed)
	}

	surface.SetStrokeStyle(o.cfg.StrokeColor())
	surface.SetLineWidth(o.cfg.Stroke.Width)
	surface.SetLineCap(lineCap)

	w, h := float64(width), float64(height)
	params := o.cfg.Params()
	droplets := make([]droplet.Droplet, o.cfg.Droplets.Count)
	for i := range droplets {
		droplets[i] = params.Spawn(src, w, h)
	}

	s := &Session{
		surface:  surface,
		width:    w,
		height:   h,
		params:   params,
		droplets: droplets,
		src:      src,
	}

	cancel := o.scheduler.Every(o.cfg.Interval(), s.tick)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	log.Printf("[Rain] Session started: %dx%d, %d droplets, interval %v",
		width, height, len(droplets), o.cfg.Interval())
	return s, nil
}

// tick renders the current frame and then moves every droplet one step.
// Droplets are always drawn at their pre-tick position.
func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	s.surface.Clear()
	for _, d := range s.droplets {
		x1, y1 := d.Endpoint()
		s.surface.StrokeLine(d.X, d.Y, x1, y1)
	}

	for i := range s.droplets {
		s.params.Advance(&s.droplets[i], s.src, s.width, s.height)
	}
	s.ticks++

	if f, ok := s.surface.(Flusher); ok {
		f.Flush()
	}
}

// Stop cancels the timer. No tick runs after Stop returns.
// It must not be called from the surface's own draw calls.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	log.Printf("[Rain] Session stopped after %d ticks", s.Ticks())
}

// Stopped reports whether Stop has been called.
func (s *Session) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// Droplets returns a copy of the droplet collection in index order.
func (s *Session) Droplets() []droplet.Droplet {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]droplet.Droplet, len(s.droplets))
	copy(out, s.droplets)
	return out
}

// Ticks returns how many ticks have completed.
func (s *Session) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Size returns the dimensions captured at Start.
func (s *Session) Size() (w, h float64) {
	return s.width, s.height
}
