package cmd

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"

	"github.com/leocov-dev/dpwrap/core"
	"github.com/leocov-dev/dpwrap/internal/shared"
	"github.com/leocov-dev/dpwrap/sources"
)

// openCmd represents the open command
var openCmd = &cobra.Command{
	Use:     "open [URL|slug|id]",
	Short:   "Open the project page for a data pack in your browser",
	Aliases: []string{"doc"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadSettings()

		project, err := modrinthAPI(cfg).GetProject(sources.ParseModrinthProjectRef(args[0]))
		if err != nil {
			shared.Exitln(err)
		}

		fmt.Println("Opening browser...")
		url := core.ProjectURL(cfg.SiteURL, project)
		err = open.Start(url)
		if err != nil {
			fmt.Println("Opening page failed, direct link:")
			fmt.Println(url)
		}
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
