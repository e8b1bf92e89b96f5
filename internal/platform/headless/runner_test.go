package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/box-jump/internal/config"
	"github.com/vovakirdan/box-jump/internal/core"
	"github.com/vovakirdan/box-jump/internal/games/boxjump"
)

func quietGame() *boxjump.Game {
	cfg := config.DefaultBoxJumpConfig()
	cfg.Spawn.Weights = config.SpawnWeights{None: 1}
	g := boxjump.New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func TestRunFixedStep(t *testing.T) {
	r := NewRunner(quietGame(), Options{Duration: 2 * time.Second, FPS: 60}, nil)

	rep, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Frames != 120 {
		t.Errorf("Frames = %d, expected 120", rep.Frames)
	}
	if rep.Crashes != 0 || rep.Jumps != 0 {
		t.Errorf("idle run on an empty track should do nothing, got %+v", rep)
	}
	if rep.FPS < 59 || rep.FPS > 61 {
		t.Errorf("FPS = %f, expected ~60", rep.FPS)
	}
}

func TestRunJumpScript(t *testing.T) {
	opts := Options{Duration: 2 * time.Second, FPS: 60, Script: JumpEvery(1)}
	rep, err := NewRunner(quietGame(), opts, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Jumps != 2 {
		t.Errorf("Jumps = %d, expected 2", rep.Jumps)
	}
	if rep.Landings != 2 {
		t.Errorf("Landings = %d, expected 2", rep.Landings)
	}
}

func TestRunHeldJumpRepeats(t *testing.T) {
	opts := Options{Duration: 2 * time.Second, FPS: 60, Script: HoldJump()}
	rep, err := NewRunner(quietGame(), opts, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Jumps < 3 {
		t.Errorf("Jumps = %d, expected a held jump to repeat", rep.Jumps)
	}
}

func TestRunStopsOnCrash(t *testing.T) {
	g := boxjump.New(config.DefaultBoxJumpConfig())
	g.Reset(core.RuntimeConfig{Seed: 3})

	// With no jumps the first spike or platform ends the run
	opts := Options{Duration: time.Minute, FPS: 60}
	rep, err := NewRunner(g, opts, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Crashes != 1 {
		t.Errorf("Crashes = %d, expected 1", rep.Crashes)
	}
	if rep.Elapsed >= 60 {
		t.Error("run should stop at the crash, not at the duration")
	}
	if g.State().Shaking {
		t.Error("run should stop only after the shake")
	}
}

func TestRunRestartsOnCrash(t *testing.T) {
	g := boxjump.New(config.DefaultBoxJumpConfig())
	g.Reset(core.RuntimeConfig{Seed: 3})

	opts := Options{Duration: 60 * time.Second, FPS: 60, RestartOnCrash: true}
	rep, err := NewRunner(g, opts, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Frames != 3600 {
		t.Errorf("Frames = %d, expected the full duration", rep.Frames)
	}
	if rep.Crashes < 2 {
		t.Errorf("Crashes = %d, expected repeated crashes while idle", rep.Crashes)
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() Report {
		g := boxjump.New(config.DefaultBoxJumpConfig())
		g.Reset(core.RuntimeConfig{Seed: 99})
		opts := Options{Duration: 30 * time.Second, FPS: 60, RestartOnCrash: true, Script: JumpEvery(0.4)}
		rep, err := NewRunner(g, opts, nil).Run(context.Background())
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return rep
	}

	if a, b := run(), run(); a != b {
		t.Errorf("reports differ:\n%+v\n%+v", a, b)
	}
}

func TestRunRealtime(t *testing.T) {
	opts := Options{Duration: 100 * time.Millisecond, FPS: 200, Realtime: true}
	start := time.Now()
	rep, err := NewRunner(quietGame(), opts, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if rep.Elapsed < 0.1 {
		t.Errorf("Elapsed = %f, expected at least 0.1", rep.Elapsed)
	}
	if time.Since(start) < 90*time.Millisecond {
		t.Error("realtime run finished faster than the wall clock")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := Options{Duration: time.Hour, FPS: 60, Realtime: true}
	_, err := NewRunner(quietGame(), opts, nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	opts := Options{Duration: time.Second, FPS: 60, Script: JumpEvery(1)}
	if _, err := NewRunner(quietGame(), opts, logger).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"simulation started", "jump", "landed", "simulation finished"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output is missing %q", want)
		}
	}
}

func TestJumpEveryScript(t *testing.T) {
	s := JumpEvery(0.5)

	if in := s(0); !in.Has(core.ActionJump) {
		t.Error("first frame should press jump")
	}
	if in := s(0.1); !in.Has(core.ActionJumpRelease) || in.Has(core.ActionJump) {
		t.Error("second frame should only release")
	}
	if in := s(0.2); !in.Empty() {
		t.Error("frames between presses should be empty")
	}
	if in := s(0.5); !in.Has(core.ActionJump) {
		t.Error("press expected after the interval")
	}

	if in := JumpEvery(0)(0); !in.Empty() {
		t.Error("zero interval should never jump")
	}
}
