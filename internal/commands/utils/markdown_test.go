package utils

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMarkdown(t *testing.T) {
	root := &cobra.Command{Use: "dpwrap", Short: "root"}
	child := &cobra.Command{Use: "package", Short: "package things", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(child)
	outDir := filepath.Join(t.TempDir(), "docs")

	err := GenerateMarkdown(root, outDir)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "dpwrap.md"))
	assert.FileExists(t, filepath.Join(outDir, "dpwrap_package.md"))
	assert.True(t, child.DisableAutoGenTag)
}
