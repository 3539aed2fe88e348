package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leocov-dev/dpwrap/config"
	"github.com/leocov-dev/dpwrap/core"
	"github.com/leocov-dev/dpwrap/fileio"
	"github.com/leocov-dev/dpwrap/internal/shared"
	"github.com/leocov-dev/dpwrap/sources"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dpwrap",
	Short: "A command line tool for repackaging Modrinth data packs as mod loader jars",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	rootCmd.Version = config.Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Add adds a new command as a subcommand to the root command
func Add(newCommand *cobra.Command) {
	rootCmd.AddCommand(newCommand)
}

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "The config file to use (default is dpwrap.toml in the current or user config directory)")

	rootCmd.PersistentFlags().String(config.KeySiteURL, core.DefaultSiteURL, "The Modrinth site used for project pages and update URLs")
	_ = viper.BindPFlag(config.KeySiteURL, rootCmd.PersistentFlags().Lookup(config.KeySiteURL))

	rootCmd.PersistentFlags().String(config.KeyAPIURL, core.DefaultAPIBaseURL, "The Modrinth API base URL")
	_ = viper.BindPFlag(config.KeyAPIURL, rootCmd.PersistentFlags().Lookup(config.KeyAPIURL))

	rootCmd.PersistentFlags().String(config.KeyShimURL, core.DefaultShimURL, "The URL of the legacy Forge wrapper class template")
	_ = viper.BindPFlag(config.KeyShimURL, rootCmd.PersistentFlags().Lookup(config.KeyShimURL))

	rootCmd.PersistentFlags().StringSlice(config.KeyResourcePackExclude, []string{}, "Gitignore style patterns of resource pack files to leave out")
	_ = viper.BindPFlag(config.KeyResourcePackExclude, rootCmd.PersistentFlags().Lookup(config.KeyResourcePackExclude))

	rootCmd.PersistentFlags().String("resource-pack-exclude-file", "", "A file of gitignore style patterns of resource pack files to leave out")
	_ = viper.BindPFlag("resource-pack-exclude-file", rootCmd.PersistentFlags().Lookup("resource-pack-exclude-file"))

	rootCmd.PersistentFlags().Bool("non-interactive", false, "Don't ask questions, use the newest version and overwrite existing files")
	_ = viper.BindPFlag("non-interactive", rootCmd.PersistentFlags().Lookup("non-interactive"))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("dpwrap")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "dpwrap"))
		}
	}

	config.BindEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// loadSettings returns the packaging configuration. Resource pack excludes always start with the
// OS metadata defaults, followed by the exclude file and the configured patterns.
func loadSettings() core.Config {
	cfg, err := config.Load()
	if err != nil {
		shared.Exitln(err)
	}

	excludeFile := viper.GetString("resource-pack-exclude-file")
	patterns, ok := fileio.ReadExcludePatterns(excludeFile)
	if excludeFile != "" && !ok {
		shared.Exitf("Failed to read exclude file %s\n", excludeFile)
	}
	cfg.ResourcePackExcludes = append(patterns, cfg.ResourcePackExcludes...)
	return cfg
}

func modrinthAPI(cfg core.Config) sources.ModrinthAPI {
	api, err := sources.NewModrinthAPI(cfg.APIBaseURL)
	if err != nil {
		shared.Exitln(err)
	}
	return api
}
