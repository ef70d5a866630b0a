package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-kitchen/internal/core"
	"github.com/vovakirdan/tui-kitchen/internal/kitchen"
	"github.com/vovakirdan/tui-kitchen/internal/platform/tui"
	"github.com/vovakirdan/tui-kitchen/internal/registry"
)

var (
	flagConfig string
	flagSolo   bool
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Start a round",
	Long: `Start a round in the given kitchen layout (default: the first
configured layout).

Controls:
  W/A/S/D, arrows  - Move
  E                - Pick up
  F                - Put down
  Space            - Use (chop)
  Tab              - Swap cook
  P/Esc            - Pause
  R                - Restart
  ?                - All keys
  Q/Ctrl+C         - Quit

Config search order:
  --config path, ~/.kitchen/configs/kitchen.yaml, ./configs/kitchen.yaml,
  then the built-in defaults.

Examples:
  kitchen play
  kitchen play split
  kitchen play galley --solo
  kitchen play --config ./my-kitchen.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kitchen config YAML")
	playCmd.Flags().BoolVar(&flagSolo, "solo", false, "Play with a single cook")
}

func runPlay(cmd *cobra.Command, args []string) error {
	layoutID := ""
	if len(args) > 0 {
		layoutID = args[0]
	}

	// Fail before taking over the terminal.
	cfg, layout, err := kitchen.Load(flagConfig, layoutID)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	kitchen.SetConfigPath(flagConfig)
	kitchen.SetLayout(layout.ID)
	kitchen.SetLogger(logger)

	gameID := "kitchen"
	if flagSolo {
		gameID = "kitchen_solo"
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting", "game", gameID, "layout", layout.ID, "size", fmt.Sprintf("%dx%d", width, height))

	return tui.Run(game, runtime, tui.Options{
		HoldInitial: cfg.Input.HoldInitial(),
		HoldRepeat:  cfg.Input.HoldRepeat(),
		Logger:      logger,
	})
}
