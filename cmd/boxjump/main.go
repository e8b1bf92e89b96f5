// boxjump is a side-scrolling box jump game for the terminal.
//
// Usage:
//
//	boxjump play             - Play in the terminal
//	boxjump simulate         - Run the simulation headless
//	boxjump config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible obstacles
//	--config <path>      - Path to a custom config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxjump",
	Short: "Box Jump - jump and spin over spikes in your terminal",
	Long: `Box Jump is a side-scrolling arcade game: a square box jumps and
spins over spikes and onto platforms while the world scrolls towards it.

Available commands:
  play      - Play in the terminal
  simulate  - Run the simulation without a terminal
  config    - Print the effective configuration

Examples:
  boxjump play
  boxjump play --seed 42 --show-fps
  boxjump simulate --duration 30s --jump-every 0.6
  boxjump config > my-boxjump.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
