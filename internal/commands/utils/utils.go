package utils

import (
	"github.com/spf13/cobra"

	"github.com/leocov-dev/dpwrap/cmd"
)

// utilsCmd groups commands for managing dpwrap itself
var utilsCmd = &cobra.Command{
	Use:   "utils",
	Short: "Utilities for managing dpwrap itself",
}

func init() {
	cmd.Add(utilsCmd)
}
