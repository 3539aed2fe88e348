package shared

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/exp/slices"

	"github.com/leocov-dev/dpwrap/core"
)

// ParseLoaders converts loader names into a duplicate free list, suggesting the closest known
// loader for anything unrecognised
func ParseLoaders(names []string) ([]core.Loader, error) {
	var loaders []core.Loader
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		loader, err := core.ParseLoader(name)
		if err != nil {
			if suggestion := suggestLoader(name); suggestion != "" {
				return nil, fmt.Errorf("%w, did you mean %q?", err, suggestion)
			}
			return nil, err
		}
		if !slices.Contains(loaders, loader) {
			loaders = append(loaders, loader)
		}
	}
	if len(loaders) == 0 {
		return nil, fmt.Errorf("at least one loader is required")
	}
	return loaders, nil
}

func suggestLoader(name string) string {
	known := make([]string, len(core.AllLoaders))
	for i, l := range core.AllLoaders {
		known[i] = string(l)
	}

	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(name)), known)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
