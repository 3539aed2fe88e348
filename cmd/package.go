package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/dpwrap/core"
	"github.com/leocov-dev/dpwrap/fileio"
	"github.com/leocov-dev/dpwrap/internal/shared"
	"github.com/leocov-dev/dpwrap/sources"
)

// packageCmd represents the package command
var packageCmd = &cobra.Command{
	Use:     "package [URL|slug|id] [version]",
	Short:   "Repackage a data pack version as a Fabric, Quilt and Forge mod jar",
	Aliases: []string{"pkg", "wrap"},
	Args:    cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg := loadSettings()
		api := modrinthAPI(cfg)

		loaders, err := shared.ParseLoaders(viper.GetStringSlice("package.loaders"))
		if err != nil {
			shared.Exitln(err)
		}

		fmt.Println("Looking up project...")
		project, version, err := resolveProjectVersion(ctx, api, args)
		if err != nil {
			shared.Exitln(err)
		}
		fmt.Printf("Packaging %s %s for %v\n", project.Title, version.VersionNumber, loaders)

		members, err := api.GetMembers(project.ID)
		if err != nil {
			shared.Exitf("Failed to get team members: %v\n", err)
		}

		index, err := gameVersionIndex(ctx, api)
		if err != nil {
			shared.Exitf("Failed to get game versions: %v\n", err)
		}

		input, err := sources.NewPackageInput(project, version, members, index, loaders)
		if err != nil {
			shared.Exitln(err)
		}

		fetcher := shared.NewProgressFetcher(core.HTTPFetcher{})
		blob, err := core.CreateDataPackVersion(ctx, fetcher, cfg, input)
		fetcher.Wait()
		if err != nil {
			shared.Exitf("Failed to package %s: %v\n", project.Slug, err)
		}

		target := viper.GetString("package.output")
		if target == "" {
			target = fmt.Sprintf("%s-%s.jar", project.Slug, core.LoaderVersionNumber(version.VersionNumber))
		}
		if _, err := os.Stat(target); err == nil {
			if !shared.PromptYesNo(fmt.Sprintf("%s already exists, overwrite? [Y/n]: ", target)) {
				shared.Exitln("Cancelled!")
			}
		}

		if err := fileio.WriteBlob(blob, target); err != nil {
			shared.Exitf("Failed to write %s: %v\n", target, err)
		}

		abs, err := filepath.Abs(target)
		if err != nil {
			abs = target
		}
		fmt.Printf("Wrote %s (%s)\n", abs, blob.MimeType)

		hashes, err := core.HashBytes(blob.Data, core.BlobHashFormats...)
		if err != nil {
			shared.Exitln(err)
		}
		formats := make([]string, 0, len(hashes))
		for format := range hashes {
			formats = append(formats, format)
		}
		sort.Strings(formats)
		for _, format := range formats {
			fmt.Printf("  %-8s %s\n", format, hashes[format])
		}
	},
}

// resolveProjectVersion looks up the project from args[0] and the version from args[1], asking
// the user to choose a version when none was given
func resolveProjectVersion(ctx context.Context, api sources.ModrinthAPI, args []string) (core.Project, sources.ModrinthVersion, error) {
	project, err := api.GetProject(sources.ParseModrinthProjectRef(args[0]))
	if err != nil {
		return core.Project{}, sources.ModrinthVersion{}, err
	}

	versions, err := api.ListVersions(ctx, project.ID)
	if err != nil {
		return core.Project{}, sources.ModrinthVersion{}, fmt.Errorf("failed to list versions: %w", err)
	}

	var version sources.ModrinthVersion
	if len(args) > 1 {
		version, err = sources.ResolveModrinthVersion(versions, args[1])
		if err != nil {
			// Versions can also be referenced by an id the listing didn't include
			if byID, idErr := api.GetVersion(ctx, args[1]); idErr == nil && byID.ProjectID == project.ID {
				version, err = byID, nil
			}
		}
	} else {
		version, err = shared.SelectVersion(versions)
	}
	if err != nil {
		return core.Project{}, sources.ModrinthVersion{}, err
	}
	return project, version, nil
}

// gameVersionIndex returns the reference index used to classify Forge versions
func gameVersionIndex(ctx context.Context, api sources.ModrinthAPI) (core.GameVersionIndex, error) {
	if explicit := viper.GetStringSlice("game-versions"); len(explicit) > 0 {
		return core.NewGameVersionIndex(explicit), nil
	}

	switch source := viper.GetString("game-version-source"); source {
	case "modrinth", "":
		return api.GetGameVersions()
	case "mojang":
		return core.GetMinecraftVersions(ctx)
	default:
		return nil, fmt.Errorf("unknown game version source %q, expected modrinth or mojang", source)
	}
}

func init() {
	rootCmd.AddCommand(packageCmd)

	packageCmd.Flags().StringSlice("loaders", []string{"fabric", "quilt", "forge"}, "The mod loaders to generate metadata for")
	_ = viper.BindPFlag("package.loaders", packageCmd.Flags().Lookup("loaders"))

	packageCmd.Flags().StringP("output", "o", "", "The jar to write (default is <slug>-<version>.jar)")
	_ = viper.BindPFlag("package.output", packageCmd.Flags().Lookup("output"))

	rootCmd.PersistentFlags().StringSlice("game-versions", []string{}, "An explicit list of known game versions used to classify Forge versions")
	_ = viper.BindPFlag("game-versions", rootCmd.PersistentFlags().Lookup("game-versions"))

	rootCmd.PersistentFlags().String("game-version-source", "modrinth", "Where to read known game versions from (modrinth or mojang)")
	_ = viper.BindPFlag("game-version-source", rootCmd.PersistentFlags().Lookup("game-version-source"))
}
