// kitchen is a cooperative cooking game for the terminal.
//
// Usage:
//
//	kitchen play [layout]    - Cook in a kitchen layout
//	kitchen list             - List available game modes
//	kitchen layouts          - List configured kitchen layouts
//	kitchen keys             - Show key bindings
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed
//	--log-file <path>     - Log file (default: ~/.kitchen/kitchen.log, "" disables)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-kitchen/internal/kitchen"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kitchen",
	Short: "TUI Kitchen - cook together in your terminal",
	Long: `TUI Kitchen is a terminal cooking game. Grab ingredients from the
pantries, chop them, and serve them at the hatch before the timer runs out.
In co-op mode you control one cook at a time and swap between them.

Available commands:
  play     - Start a round
  list     - Show available game modes
  layouts  - Show configured kitchen layouts
  keys     - Show key bindings

Examples:
  kitchen play
  kitchen play galley --solo
  kitchen play --config ./my-kitchen.yaml split
  kitchen --log-level debug play`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.kitchen/kitchen.log", "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(keysCmd)
}
