package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kitchen/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(tui.KeysTable(tui.DefaultKeyMap()))
		fmt.Println()
		fmt.Println("Terminals do not report key releases: a movement key counts as")
		fmt.Println("held until its auto-repeat stops (see input.hold_* in the config).")
	},
}
