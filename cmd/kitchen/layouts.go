package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kitchen/internal/config"
	"github.com/vovakirdan/tui-kitchen/internal/kitchen"
)

var flagShowRows bool

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List configured kitchen layouts",
	Long: `Shows the kitchen layouts from the active configuration, with their
size and number of cooks. Invalid layouts are listed with their error.`,
	RunE: runLayouts,
}

func init() {
	layoutsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom kitchen config YAML")
	layoutsCmd.Flags().BoolVar(&flagShowRows, "show", false, "Print each layout's map")
}

func runLayouts(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadKitchen(flagConfig)
	if err != nil {
		return err
	}

	maxIDLen := 2 // "ID" header
	for _, lc := range cfg.Layouts {
		maxIDLen = max(maxIDLen, len(lc.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Cooks", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")
	for _, lc := range cfg.Layouts {
		l, err := kitchen.ParseLayoutConfig(lc)
		if err != nil {
			fmt.Printf("  %-*s  invalid: %v\n", maxIDLen, lc.ID, err)
			continue
		}
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-7s  %-5d  %s\n", maxIDLen, l.ID, size, len(l.Spawns), l.Name)
		if flagShowRows {
			fmt.Println()
			fmt.Println("    " + strings.Join(lc.Rows, "\n    "))
			fmt.Println()
		}
	}
	return nil
}
