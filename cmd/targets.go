package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine"
)

// targets: list what convert can emit
var TargetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the supported target languages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range engine.Targets() {
			fmt.Println(string(t))
		}
	},
}
