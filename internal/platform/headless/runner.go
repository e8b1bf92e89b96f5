// Package headless drives a game without a terminal: a wall-clock or
// fixed-step loop fed by a scripted input source.
package headless

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/box-jump/internal/core"
	"github.com/vovakirdan/box-jump/internal/games/boxjump"
)

// Options controls a headless run.
type Options struct {
	Duration       time.Duration // Simulated time to run for
	FPS            int           // Frames per second, also the fixed step rate
	Realtime       bool          // Pace frames against the wall clock
	RestartOnCrash bool          // Restart after the crash shake instead of stopping
	Script         Script        // Input source, nil means Idle
}

// Report summarizes a finished run.
type Report struct {
	Frames   int
	Elapsed  float64 // Simulated seconds
	Score    int     // Best score over all runs
	Jumps    int
	Landings int
	Crashes  int
	FPS      float64 // Last measured frame rate
}

// Runner owns the loop around one game.
type Runner struct {
	game    *boxjump.Game
	opts    Options
	logger  *log.Logger
	limiter *core.Limiter
	clock   *core.FrameClock
}

// NewRunner creates a runner. A nil logger discards all output.
func NewRunner(game *boxjump.Game, opts Options, logger *log.Logger) *Runner {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Script == nil {
		opts.Script = Idle()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Runner{
		game:    game,
		opts:    opts,
		logger:  logger,
		limiter: core.NewLimiter(opts.FPS),
		clock:   core.NewFrameClock(game.Config().Frame.MaxDelta),
	}
}

// Run steps the game until the duration is used up, the run crashes (unless
// RestartOnCrash is set), or ctx is cancelled. The report is valid in every
// case.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	var rep Report

	duration := r.opts.Duration.Seconds()
	step := 1 / float64(r.opts.FPS)
	maxFrames := int(math.Round(duration * float64(r.opts.FPS)))

	r.logger.Info("simulation started",
		"duration", r.opts.Duration,
		"fps", r.opts.FPS,
		"realtime", r.opts.Realtime,
	)

	prev := r.game.Frame()
	nextReport := 1.0

	for {
		if r.opts.Realtime {
			if rep.Elapsed >= duration {
				break
			}
		} else if rep.Frames >= maxFrames {
			break
		}

		delta := step
		if r.opts.Realtime {
			if err := r.limiter.Wait(ctx); err != nil {
				r.finish(rep)
				return rep, fmt.Errorf("headless: %w", err)
			}
			delta = r.clock.Tick()
		} else if err := ctx.Err(); err != nil {
			r.finish(rep)
			return rep, fmt.Errorf("headless: %w", err)
		}

		in := r.opts.Script(rep.Elapsed)
		if prev.Collided && !prev.Shaking && r.opts.RestartOnCrash {
			in.Set(core.ActionRestart)
		}

		r.game.Step(in, delta)
		rep.Frames++
		rep.Elapsed += delta

		cur := r.game.Frame()
		r.observe(&rep, prev, cur)
		prev = cur

		if rep.Elapsed >= nextReport {
			r.logger.Info("progress", "t", round(rep.Elapsed), "score", cur.Score, "fps", round(cur.FPS))
			nextReport++
		}

		if cur.Collided && !cur.Shaking && !r.opts.RestartOnCrash {
			break
		}
		if !cur.Running {
			break
		}
	}

	r.finish(rep)
	return rep, nil
}

// observe counts and logs the transitions between two consecutive frames.
func (r *Runner) observe(rep *Report, prev, cur boxjump.Frame) {
	if cur.Score > rep.Score {
		rep.Score = cur.Score
	}
	rep.FPS = cur.FPS

	if cur.Phase == boxjump.PhaseJumping && prev.Phase != boxjump.PhaseJumping {
		rep.Jumps++
		r.logger.Debug("jump", "t", round(rep.Elapsed))
	}
	if prev.Phase != boxjump.PhaseNeutral && cur.Phase == boxjump.PhaseNeutral && !prev.Collided && !cur.Collided {
		rep.Landings++
		r.logger.Debug("landed", "t", round(rep.Elapsed))
	}
	if cur.Collided && !prev.Collided {
		rep.Crashes++
		r.logger.Info("collision", "t", round(rep.Elapsed), "score", cur.Score, "level", cur.Level)
	}
	if prev.Shaking && !cur.Shaking {
		r.logger.Debug("shake finished", "t", round(rep.Elapsed))
	}
	if prev.Collided && !cur.Collided {
		r.logger.Info("restarted", "t", round(rep.Elapsed))
	}
}

func (r *Runner) finish(rep Report) {
	r.logger.Info("simulation finished",
		"frames", rep.Frames,
		"elapsed", round(rep.Elapsed),
		"score", rep.Score,
		"jumps", rep.Jumps,
		"crashes", rep.Crashes,
	)
}

// round keeps log values readable.
func round(v float64) float64 {
	return math.Round(v*100) / 100
}
