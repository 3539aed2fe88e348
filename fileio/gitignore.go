package fileio

import (
	"os"
	"strings"
)

var excludeDefaults = []string{
	// Defaults (can be overridden with a negating pattern preceded with !)

	// Exclude macOS metadata
	".DS_Store",
	"__MACOSX/**",

	// Exclude Windows metadata
	"Thumbs.db",
	"desktop.ini",
}

// ReadExcludePatterns returns the default resource pack exclude patterns followed by the lines of
// the file at path. The boolean reports whether the file could be read.
func ReadExcludePatterns(path string) ([]string, bool) {
	var lines []string
	lines = append(lines, excludeDefaults...)
	if path == "" {
		return lines, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return lines, false
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, true
}
