package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leocov-dev/dpwrap/core"
	"github.com/leocov-dev/dpwrap/internal/shared"
)

// gameVersionsCmd represents the game-versions command
var gameVersionsCmd = &cobra.Command{
	Use:   "game-versions",
	Short: "List the known game versions used to classify Forge versions, oldest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		index, err := gameVersionIndex(ctx, modrinthAPI(loadSettings()))
		if err != nil {
			shared.Exitf("Failed to get game versions: %v\n", err)
		}

		cutoff := index.IndexOf(core.ForgeCutoffVersion)
		for i, v := range index {
			marker := ""
			if i == cutoff {
				marker = " (legacy Forge cutoff)"
			}
			fmt.Println(v + marker)
		}
	},
}

func init() {
	rootCmd.AddCommand(gameVersionsCmd)
}
