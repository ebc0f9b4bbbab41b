// Package loop drives the per-frame update: advance time, update the camera,
// draw. The host decides when frames happen through a Scheduler.
package loop

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/ragingsea/internal/logger"
	"github.com/Faultbox/ragingsea/internal/surface"
)

// State is the loop lifecycle state.
type State int32

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Controller is updated once per frame before drawing.
type Controller interface {
	Update()
}

// Drawer renders one frame.
type Drawer interface {
	Draw() error
}

// Scheduler calls frame once per display refresh until it returns false or
// the host closes. It blocks for the lifetime of the loop.
type Scheduler interface {
	Schedule(frame func() bool) error
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the monotonic wall clock.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// Loop advances Params.Time and redraws.
type Loop struct {
	params     *surface.Params
	controller Controller
	drawer     Drawer
	clock      Clock
	state      atomic.Int32

	frames    uint64
	fps       float64
	fpsStart  float64
	fpsFrames int
	lastErr   string
}

// New creates a stopped loop.
func New(params *surface.Params, controller Controller, drawer Drawer, opts ...Option) *Loop {
	l := &Loop{
		params:     params,
		controller: controller,
		drawer:     drawer,
		clock:      NewClock(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current state.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Stop halts the loop. The frame in progress finishes; no further frame is
// drawn. Safe to call more than once and from any goroutine.
func (l *Loop) Stop() {
	if l.state.Swap(int32(Stopped)) == int32(Running) {
		logger.Debug("render loop stopped", zap.Uint64("frames", l.frames))
	}
}

// Frames returns the number of completed ticks.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// FPS returns the frame rate measured over the last full second.
func (l *Loop) FPS() float64 {
	return l.fps
}

// Tick runs one frame: read the clock, publish the time, update the
// controller, draw. It reports whether the loop is still running.
func (l *Loop) Tick() bool {
	if l.State() != Running {
		return false
	}

	now := l.clock.Elapsed()
	l.params.Time = float32(now)

	if l.controller != nil {
		l.controller.Update()
	}

	if err := l.drawer.Draw(); err != nil {
		// Logged once per distinct error; the next frame retries.
		if msg := err.Error(); msg != l.lastErr {
			logger.Error("draw failed", zap.Error(err))
			l.lastErr = msg
		}
	} else {
		l.lastErr = ""
	}

	l.frames++
	l.measure(now)

	return l.State() == Running
}

func (l *Loop) measure(now float64) {
	l.fpsFrames++
	if elapsed := now - l.fpsStart; elapsed >= 1 {
		l.fps = float64(l.fpsFrames) / elapsed
		logger.Debug("frame rate", zap.Float64("fps", l.fps), zap.Uint64("frames", l.frames))
		l.fpsStart = now
		l.fpsFrames = 0
	}
}

// Run starts the clock and hands frames to s until the loop is stopped, the
// host closes, or ctx is cancelled. Cancellation is a normal shutdown and
// returns nil.
func (l *Loop) Run(ctx context.Context, s Scheduler) error {
	l.clock.Start()
	l.fpsStart = 0
	l.state.Store(int32(Running))
	logger.Debug("render loop started")

	err := s.Schedule(func() bool {
		if ctx.Err() != nil {
			l.Stop()
			return false
		}
		return l.Tick()
	})
	l.Stop()

	if err != nil {
		return fmt.Errorf("frame scheduler: %w", err)
	}
	return nil
}
