package core

import "github.com/charmbracelet/log"

// ForgeCutoffVersion is the first game version the modern Forge dialect is generated for
const ForgeCutoffVersion = "1.18.2"

// ForgeDialect selects the loader block written to META-INF/mods.toml
type ForgeDialect struct {
	ModLoader     string
	LoaderVersion string
	// Legacy dialects need the wrapper class shim in the archive
	Legacy bool
	// Matched is false when none of the version's game versions appear in the index.
	// Such versions fall back to the legacy dialect.
	Matched bool
}

var (
	legacyForge = ForgeDialect{ModLoader: "lowcodefml", LoaderVersion: "[40,)", Legacy: true}
	modernForge = ForgeDialect{ModLoader: "javafml", LoaderVersion: "[25,)"}
)

// ClassifyForge compares the newest of gameVersions against the cutoff version by their
// positions in index.
func ClassifyForge(gameVersions []string, index GameVersionIndex) ForgeDialect {
	cutoff := index.IndexOf(ForgeCutoffVersion)
	highest := HighestSliceIndex(index, gameVersions)

	var dialect ForgeDialect
	if highest < 0 || highest < cutoff {
		dialect = legacyForge
	} else {
		dialect = modernForge
	}
	dialect.Matched = highest >= 0

	if !dialect.Matched {
		log.Warn("no game version found in reference list, using legacy forge dialect", "gameVersions", gameVersions)
	}
	if cutoff < 0 {
		log.Warn("cutoff version missing from reference list", "cutoff", ForgeCutoffVersion)
	}

	return dialect
}
