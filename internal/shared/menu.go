package shared

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/dixonwille/wmenu.v4"

	"github.com/leocov-dev/dpwrap/sources"
)

var ErrSelectionCancelled = errors.New("version selection cancelled")

// SelectVersion asks the user to pick one of versions, newest first. In non-interactive mode the
// newest version is used.
func SelectVersion(versions []sources.ModrinthVersion) (sources.ModrinthVersion, error) {
	if len(versions) == 0 {
		return sources.ModrinthVersion{}, errors.New("project has no versions")
	}
	if viper.GetBool("non-interactive") || len(versions) == 1 {
		return versions[0], nil
	}

	var selected sources.ModrinthVersion
	menu := wmenu.NewMenu("Choose a number:")
	menu.Option("Cancel", nil, false, nil)
	for i, v := range versions {
		menu.Option(VersionLabel(v), v, i == 0, nil)
	}

	menu.Action(func(menuRes []wmenu.Opt) error {
		if len(menuRes) != 1 || menuRes[0].Value == nil {
			return ErrSelectionCancelled
		}

		var ok bool
		selected, ok = menuRes[0].Value.(sources.ModrinthVersion)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		return nil
	})

	if err := menu.Run(); err != nil {
		return sources.ModrinthVersion{}, err
	}
	return selected, nil
}

func VersionLabel(v sources.ModrinthVersion) string {
	label := v.VersionNumber
	if v.Name != "" && v.Name != v.VersionNumber {
		label = v.Name + " (" + v.VersionNumber + ")"
	}
	if len(v.GameVersions) > 0 {
		label += fmt.Sprintf(" for %s", strings.Join(v.GameVersions, ", "))
	}
	return label
}
