package core

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

// fakeTime is a manually advanced time source.
type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time {
	return f.t
}

func (f *fakeTime) advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func TestFrameClockTick(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewFrameClockWith(ft.now, 0)

	if d := c.Tick(); d != 0 {
		t.Errorf("first Tick() = %f, expected 0", d)
	}

	ft.advance(16 * time.Millisecond)
	if d := c.Tick(); math.Abs(d-0.016) > 1e-9 {
		t.Errorf("Tick() = %f, expected 0.016", d)
	}

	ft.advance(2 * time.Second)
	if d := c.Tick(); math.Abs(d-2) > 1e-9 {
		t.Errorf("unbounded Tick() = %f, expected 2", d)
	}
}

func TestFrameClockClamp(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewFrameClockWith(ft.now, 0.1)
	c.Tick()

	ft.advance(5 * time.Second)
	if d := c.Tick(); d != 0.1 {
		t.Errorf("Tick() = %f, expected clamp to 0.1", d)
	}

	// Time going backwards never produces a negative delta
	ft.advance(-time.Second)
	if d := c.Tick(); d != 0 {
		t.Errorf("Tick() = %f, expected 0 for a backwards clock", d)
	}
}

func TestFrameClockRestart(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewFrameClockWith(ft.now, 0)
	c.Tick()

	ft.advance(time.Second)
	c.Restart()
	if d := c.Tick(); d != 0 {
		t.Errorf("Tick() after Restart = %f, expected 0", d)
	}
}

func TestLimiterSleepsUntilDeadline(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	var slept []time.Duration

	l := NewLimiter(50) // 20ms frames
	l.now = ft.now
	l.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		ft.advance(d)
		return nil
	}

	ctx := context.Background()
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}

	ft.advance(5 * time.Millisecond) // simulated frame work
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}

	if len(slept) != 1 || slept[0] != 15*time.Millisecond {
		t.Errorf("slept %v, expected [15ms]", slept)
	}

	// Falling behind re-anchors without sleeping
	ft.advance(100 * time.Millisecond)
	if err := l.Wait(ctx); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}
	if len(slept) != 1 {
		t.Errorf("expected no sleep when behind schedule, got %v", slept)
	}
}

func TestLimiterCancelled(t *testing.T) {
	l := NewLimiter(1)
	ctx, cancel := context.WithCancel(context.Background())

	if err := l.Wait(ctx); err != nil {
		t.Fatalf("first Wait() failed: %v", err)
	}

	cancel()
	if err := l.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() = %v, expected context.Canceled", err)
	}
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(0)
	if l.Interval() != 0 {
		t.Errorf("Interval() = %v, expected 0", l.Interval())
	}
	if err := l.Wait(context.Background()); err != nil {
		t.Errorf("Wait() = %v, expected nil", err)
	}
}

func TestFPSMeter(t *testing.T) {
	m := NewFPSMeter(0.5)
	if m.FPS() != 0 {
		t.Error("FPS should be 0 before the first window")
	}

	for i := 0; i < 31; i++ {
		m.Add(1.0 / 60)
	}
	if math.Abs(m.FPS()-60) > 1e-6 {
		t.Errorf("FPS() = %f, expected 60", m.FPS())
	}
}
