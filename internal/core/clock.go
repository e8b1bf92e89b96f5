package core

import (
	"context"
	"time"
)

// FrameClock measures the wall-clock time between consecutive frames.
// It only reads timestamps; it never touches game state.
type FrameClock struct {
	now      func() time.Time
	last     time.Time
	started  bool
	maxDelta float64 // Upper bound on a single delta in seconds, 0 = unbounded
}

// NewFrameClock creates a clock backed by time.Now.
func NewFrameClock(maxDelta float64) *FrameClock {
	return NewFrameClockWith(time.Now, maxDelta)
}

// NewFrameClockWith creates a clock backed by a custom time source.
func NewFrameClockWith(now func() time.Time, maxDelta float64) *FrameClock {
	return &FrameClock{now: now, maxDelta: maxDelta}
}

// Tick returns the seconds elapsed since the previous Tick.
// The first call returns 0.
func (c *FrameClock) Tick() float64 {
	return c.TickAt(c.now())
}

// TickAt is Tick with an externally supplied timestamp, for frontends whose
// scheduler already stamps each frame.
func (c *FrameClock) TickAt(t time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}

	delta := t.Sub(c.last).Seconds()
	c.last = t

	if delta < 0 {
		return 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		return c.maxDelta
	}
	return delta
}

// Restart forgets the previous timestamp so the next Tick returns 0.
// Used after pauses where the elapsed time must not reach the simulation.
func (c *FrameClock) Restart() {
	c.started = false
}

// Limiter caps the frame rate by sleeping until the next frame deadline.
type Limiter struct {
	interval time.Duration
	next     time.Time
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewLimiter creates a limiter for the given frames per second.
// A non-positive fps disables limiting.
func NewLimiter(fps int) *Limiter {
	l := &Limiter{now: time.Now, sleep: sleepContext}
	if fps > 0 {
		l.interval = time.Second / time.Duration(fps)
	}
	return l
}

// Interval returns the target frame duration.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}

// Wait blocks until the next frame deadline or until ctx is done.
// When the caller has fallen more than a frame behind, the schedule is
// re-anchored to now instead of bursting to catch up.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.interval <= 0 {
		return ctx.Err()
	}

	now := l.now()
	if l.next.IsZero() {
		l.next = now.Add(l.interval)
		return ctx.Err()
	}

	if wait := l.next.Sub(now); wait > 0 {
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
		l.next = l.next.Add(l.interval)
		return nil
	}

	l.next = now.Add(l.interval)
	return ctx.Err()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FPSMeter averages the frame rate over a rolling time window.
type FPSMeter struct {
	window  float64 // Seconds per sample
	elapsed float64
	frames  int
	fps     float64
}

// NewFPSMeter creates a meter that refreshes its reading every window seconds.
func NewFPSMeter(window float64) *FPSMeter {
	if window <= 0 {
		window = 0.5
	}
	return &FPSMeter{window: window}
}

// Add records one frame that took delta seconds.
func (m *FPSMeter) Add(delta float64) {
	m.frames++
	m.elapsed += delta
	if m.elapsed >= m.window {
		m.fps = float64(m.frames) / m.elapsed
		m.frames = 0
		m.elapsed = 0
	}
}

// FPS returns the most recent reading, 0 until the first window completes.
func (m *FPSMeter) FPS() float64 {
	return m.fps
}
