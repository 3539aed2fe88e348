package core

import (
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// AssetsRootMarker identifies vanilla asset root marker files, which must never be merged into a pack
const AssetsRootMarker = ".mcassetsroot"

// resourcePackFilter decides which resource pack entries are left out of the merged archive
type resourcePackFilter struct {
	ignore *gitignore.GitIgnore
}

func newResourcePackFilter(patterns []string) resourcePackFilter {
	if len(patterns) == 0 {
		return resourcePackFilter{}
	}
	return resourcePackFilter{ignore: gitignore.CompileIgnoreLines(patterns...)}
}

func (f resourcePackFilter) Excluded(path string) bool {
	if strings.Contains(path, AssetsRootMarker) {
		return true
	}
	return f.ignore != nil && f.ignore.MatchesPath(path)
}
