package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/box-jump/internal/config"
	"github.com/vovakirdan/box-jump/internal/core"
	"github.com/vovakirdan/box-jump/internal/games/boxjump"
	"github.com/vovakirdan/box-jump/internal/platform/tui"
)

var (
	flagShowFPS bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/W/Up  - Jump (hold to keep jumping)
  P           - Pause / resume
  Esc         - Resume
  R           - Restart
  Ctrl+S      - Save a screenshot to ~/.boxjump/screenshots
  Q/Ctrl+C    - Quit

Examples:
  boxjump play
  boxjump play --seed 42
  boxjump play --show-fps --fps 120
  boxjump play --config ./my-boxjump.yaml --log-file boxjump.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagShowFPS, "show-fps", false, "Show the frame rate in the HUD")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded otherwise)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to Bubble Tea, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut, "boxjump")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		ShowFPS:  flagShowFPS,
	}

	game := boxjump.New(cfg)
	if runErr := tui.Run(game, rt, logger); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Final score: %d\n", game.State().Score)
}
