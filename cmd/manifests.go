package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/dpwrap/core"
	"github.com/leocov-dev/dpwrap/fileio"
	"github.com/leocov-dev/dpwrap/internal/shared"
)

// manifestsCmd represents the manifests command
var manifestsCmd = &cobra.Command{
	Use:   "manifests [URL|slug|id] [version]",
	Short: "Show the loader metadata generated for a data pack version without downloading it",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg := loadSettings()
		api := modrinthAPI(cfg)

		loaders, err := shared.ParseLoaders(viper.GetStringSlice("manifests.loaders"))
		if err != nil {
			shared.Exitln(err)
		}

		project, version, err := resolveProjectVersion(ctx, api, args)
		if err != nil {
			shared.Exitln(err)
		}

		members, err := api.GetMembers(project.ID)
		if err != nil {
			shared.Exitf("Failed to get team members: %v\n", err)
		}

		index, err := gameVersionIndex(ctx, api)
		if err != nil {
			shared.Exitf("Failed to get game versions: %v\n", err)
		}

		dialect := core.ClassifyForge(version.GameVersions, index)
		manifests, err := core.BuildManifests(cfg, project, version.ToCoreVersion(), members, dialect)
		if err != nil {
			shared.Exitln(err)
		}

		fmt.Printf("Forge dialect: %s %s (legacy: %t)\n", dialect.ModLoader, dialect.LoaderVersion, dialect.Legacy)

		dir := viper.GetString("manifests.dir")
		writer := fileio.NewManifestWriter(dir)
		for _, manifest := range manifests.ForLoaders(loaders) {
			if dir != "" {
				format, hash, err := writer.Write(manifest)
				if err != nil {
					shared.Exitf("Failed to write %s: %v\n", manifest.Path(), err)
				}
				fmt.Printf("Wrote %s (%s %s)\n", manifest.Path(), format, hash)
				continue
			}

			result, err := manifest.Marshal()
			if err != nil {
				shared.Exitf("Failed to encode %s: %v\n", manifest.Path(), err)
			}
			fmt.Printf("--- %s\n%s\n", manifest.Path(), result)
		}
	},
}

func init() {
	rootCmd.AddCommand(manifestsCmd)

	manifestsCmd.Flags().StringSlice("loaders", []string{"fabric", "quilt", "forge"}, "The mod loaders to generate metadata for")
	_ = viper.BindPFlag("manifests.loaders", manifestsCmd.Flags().Lookup("loaders"))

	manifestsCmd.Flags().String("dir", "", "Write the manifests below this directory instead of printing them")
	_ = viper.BindPFlag("manifests.dir", manifestsCmd.Flags().Lookup("dir"))
}
