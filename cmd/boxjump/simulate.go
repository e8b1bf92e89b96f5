package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/box-jump/internal/config"
	"github.com/vovakirdan/box-jump/internal/core"
	"github.com/vovakirdan/box-jump/internal/games/boxjump"
	"github.com/vovakirdan/box-jump/internal/platform/headless"
)

var (
	flagDuration  time.Duration
	flagJumpEvery float64
	flagHoldJump  bool
	flagRealtime  bool
	flagRestart   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation without a terminal",
	Long: `Run the game loop headless with scripted input and log what happens.

By default frames advance in fixed steps of 1/fps as fast as possible.
With --realtime the loop sleeps until each frame deadline and measures the
real frame delta instead.

Examples:
  boxjump simulate --duration 10s
  boxjump simulate --jump-every 0.6 --seed 7 --log-level debug
  boxjump simulate --hold-jump --realtime --duration 5s
  boxjump simulate --restart --duration 5m`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", 10*time.Second, "Simulated time to run")
	simulateCmd.Flags().Float64Var(&flagJumpEvery, "jump-every", 0, "Tap jump every N seconds (0 = never)")
	simulateCmd.Flags().BoolVar(&flagHoldJump, "hold-jump", false, "Hold jump for the whole run")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames against the wall clock")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", false, "Restart after a crash instead of stopping")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr, "boxjump-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := boxjump.New(cfg)
	game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed})

	script := headless.Idle()
	switch {
	case flagHoldJump:
		script = headless.HoldJump()
	case flagJumpEvery > 0:
		script = headless.JumpEvery(flagJumpEvery)
	}

	opts := headless.Options{
		Duration:       flagDuration,
		FPS:            flagFPS,
		Realtime:       flagRealtime,
		RestartOnCrash: flagRestart,
		Script:         script,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("seed", "value", seed)
	rep, runErr := headless.NewRunner(game, opts, logger).Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("frames=%d elapsed=%.2fs score=%d jumps=%d landings=%d crashes=%d fps=%.1f\n",
		rep.Frames, rep.Elapsed, rep.Score, rep.Jumps, rep.Landings, rep.Crashes, rep.FPS)
}
