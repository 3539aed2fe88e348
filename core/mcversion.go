package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/unascribed/FlexVer/go/flexver"
	"golang.org/x/exp/slices"
)

const mojangVersionManifestURL = "https://launchermeta.mojang.com/mc/game/version_manifest.json"

type versionJson struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []versionDef `json:"versions"`
}

type versionDef struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Time        string `json:"time"`
	ReleaseTime string `json:"releaseTime"`
}

// GameVersionIndex is a list of known game versions, oldest first. Only the relative
// position of two entries is meaningful.
type GameVersionIndex []string

// NewGameVersionIndex builds an index from versions in arbitrary order by sorting them with FlexVer
func NewGameVersionIndex(versions []string) GameVersionIndex {
	sorted := append([]string(nil), versions...)
	flexver.VersionSlice(sorted).Sort()
	return GameVersionIndex(slices.Compact(sorted))
}

// NewestFirstIndex converts a newest-first listing, as served by Modrinth and Mojang, into an index
func NewestFirstIndex(versions []string) GameVersionIndex {
	index := append(GameVersionIndex(nil), versions...)
	slices.Reverse(index)
	return index
}

// IndexOf returns the position of version, or -1
func (g GameVersionIndex) IndexOf(version string) int {
	return slices.Index(g, version)
}

// HighestSliceIndex returns the highest index of the given values in the slice (-1 if no value is found in the slice)
func HighestSliceIndex(slice []string, values []string) int {
	highest := -1
	for _, val := range values {
		for i, v := range slice {
			if v == val && i > highest {
				highest = i
			}
		}
	}
	return highest
}

// GetMinecraftVersions reads Mojang's launcher manifest and returns the release versions as an index
func GetMinecraftVersions(ctx context.Context) (GameVersionIndex, error) {
	return getMinecraftVersionsFrom(ctx, mojangVersionManifestURL)
}

func getMinecraftVersionsFrom(ctx context.Context, url string) (GameVersionIndex, error) {
	body, err := FetchBytes(ctx, url, "application/json")
	if err != nil {
		return nil, err
	}

	var info versionJson
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse version manifest: %w", err)
	}

	versions := make([]string, 0)
	for _, v := range info.Versions {
		if v.Type != "release" {
			continue
		}
		versions = append(versions, v.ID)
	}

	return NewestFirstIndex(versions), nil
}
