package core

import "github.com/pelletier/go-toml/v2"

// ForgeManifest is the META-INF/mods.toml written for Forge
type ForgeManifest struct {
	ModLoader          string     `toml:"modLoader"`
	LoaderVersion      string     `toml:"loaderVersion"`
	License            string     `toml:"license"`
	ShowAsResourcePack bool       `toml:"showAsResourcePack"`
	IssueTrackerURL    string     `toml:"issueTrackerURL,omitempty"`
	Mods               []ForgeMod `toml:"mods"`
}

type ForgeMod struct {
	ModID         string `toml:"modId"`
	Version       string `toml:"version"`
	DisplayName   string `toml:"displayName"`
	Description   string `toml:"description"`
	LogoFile      string `toml:"logoFile"`
	UpdateJSONURL string `toml:"updateJSONURL"`
	Credits       string `toml:"credits"`
	Authors       string `toml:"authors"`
	DisplayURL    string `toml:"displayURL"`
}

const forgeCredits = "Generated by Beehive"

func (m *ForgeManifest) Path() string {
	return ForgeManifestPath
}

func (m *ForgeManifest) Marshal() (MarshalResult, error) {
	value, err := toml.Marshal(m)
	if err != nil {
		return MarshalResult{}, err
	}
	return hashedResult(value)
}
