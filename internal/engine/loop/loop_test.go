package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/ragingsea/internal/surface"
)

// stepClock advances by a fixed step on every read.
type stepClock struct {
	now, step float64
	started   bool
}

func (c *stepClock) Start()           { c.now = 0; c.started = true }
func (c *stepClock) Elapsed() float64 { c.now += c.step; return c.now }

// recorder logs the order of calls and what Time each draw saw.
type recorder struct {
	params *surface.Params
	calls  []string
	times  []float32
	err    error
}

func (r *recorder) Update() { r.calls = append(r.calls, "update") }

func (r *recorder) Draw() error {
	r.calls = append(r.calls, "draw")
	r.times = append(r.times, r.params.Time)
	return r.err
}

// frameScheduler runs frames back to back, at most limit times.
type frameScheduler struct {
	limit int
	ran   int
	onRun func(i int)
	err   error
}

func (s *frameScheduler) Schedule(frame func() bool) error {
	for s.ran < s.limit {
		if s.onRun != nil {
			s.onRun(s.ran)
		}
		s.ran++
		if !frame() {
			break
		}
	}
	return s.err
}

func newTestLoop(step float64) (*Loop, *recorder, *stepClock) {
	p := surface.Defaults()
	rec := &recorder{params: p}
	clock := &stepClock{step: step}
	return New(p, rec, rec, WithClock(clock)), rec, clock
}

func TestTickOrder(t *testing.T) {
	l, rec, _ := newTestLoop(0.5)
	l.state.Store(int32(Running))

	require.True(t, l.Tick())
	require.True(t, l.Tick())

	assert.Equal(t, []string{"update", "draw", "update", "draw"}, rec.calls)
	assert.Equal(t, []float32{0.5, 1.0}, rec.times, "draw sees the time written this tick")
}

func TestTickWhenStopped(t *testing.T) {
	l, rec, _ := newTestLoop(0.1)

	assert.Equal(t, Stopped, l.State())
	assert.False(t, l.Tick())
	assert.Empty(t, rec.calls)
}

func TestRunStartsClockAndAdvancesTime(t *testing.T) {
	l, rec, clock := newTestLoop(1.0 / 60)
	sched := &frameScheduler{limit: 10}

	require.NoError(t, l.Run(context.Background(), sched))

	assert.True(t, clock.started)
	assert.Equal(t, 10, sched.ran)
	assert.Equal(t, uint64(10), l.Frames())
	for i := 1; i < len(rec.times); i++ {
		assert.Greater(t, rec.times[i], rec.times[i-1])
	}
	assert.Equal(t, Stopped, l.State(), "run leaves the loop stopped")
}

func TestStopHaltsBeforeNextFrame(t *testing.T) {
	l, rec, _ := newTestLoop(0.1)
	sched := &frameScheduler{limit: 100}
	sched.onRun = func(i int) {
		if i == 3 {
			l.Stop()
		}
	}

	require.NoError(t, l.Run(context.Background(), sched))

	assert.Equal(t, 4, sched.ran)
	assert.Len(t, rec.times, 3, "no draw after stop")

	l.Stop() // idempotent
	assert.Equal(t, Stopped, l.State())
}

func TestContextCancellation(t *testing.T) {
	l, rec, _ := newTestLoop(0.1)
	ctx, cancel := context.WithCancel(context.Background())
	sched := &frameScheduler{limit: 100}
	sched.onRun = func(i int) {
		if i == 5 {
			cancel()
		}
	}

	err := l.Run(ctx, sched)

	assert.NoError(t, err)
	assert.Len(t, rec.times, 5)
	assert.Equal(t, Stopped, l.State())
}

func TestDrawErrorKeepsRunning(t *testing.T) {
	l, rec, _ := newTestLoop(0.1)
	rec.err = errors.New("gl error 0x502")
	sched := &frameScheduler{limit: 3}

	require.NoError(t, l.Run(context.Background(), sched))
	assert.Len(t, rec.times, 3)
}

func TestSchedulerErrorWrapped(t *testing.T) {
	l, _, _ := newTestLoop(0.1)
	boom := errors.New("window lost")
	sched := &frameScheduler{limit: 1, err: boom}

	err := l.Run(context.Background(), sched)
	assert.ErrorIs(t, err, boom)
}

func TestFPSMeasured(t *testing.T) {
	l, _, _ := newTestLoop(0.25)
	sched := &frameScheduler{limit: 8}

	require.NoError(t, l.Run(context.Background(), sched))
	assert.InDelta(t, 4.0, l.FPS(), 1e-9)
}

func TestMonotonicClock(t *testing.T) {
	c := NewClock()
	c.Start()
	a := c.Elapsed()
	time.Sleep(time.Millisecond)
	b := c.Elapsed()

	assert.GreaterOrEqual(t, a, 0.0)
	assert.Greater(t, b, a)
}
