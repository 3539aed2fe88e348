package utils

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"

	"github.com/leocov-dev/dpwrap/internal/shared"
)

// markdownCmd represents the markdown command
var markdownCmd = &cobra.Command{
	Use:     "markdown",
	Short:   "Generate markdown documentation for every dpwrap command",
	Aliases: []string{"md"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		outDir := viper.GetString("utils.markdown.dir")
		if err := GenerateMarkdown(cmd.Root(), outDir); err != nil {
			shared.Exitf("Error generating markdown: %s\n", err)
		}
		fmt.Println("Generated markdown successfully!")
	},
}

// GenerateMarkdown writes one markdown page per command below outDir
func GenerateMarkdown(root *cobra.Command, outDir string) error {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	disableTag(root)
	return doc.GenMarkdownTree(root, outDir)
}

func disableTag(cmd *cobra.Command) {
	cmd.DisableAutoGenTag = true
	for _, v := range cmd.Commands() {
		disableTag(v)
	}
}

func init() {
	utilsCmd.AddCommand(markdownCmd)

	markdownCmd.Flags().String("dir", ".", "The destination directory to save docs in")
	_ = viper.BindPFlag("utils.markdown.dir", markdownCmd.Flags().Lookup("dir"))
}
