package core

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
)

const (
	DefaultSiteURL    = "https://modrinth.com"
	DefaultAPIBaseURL = "https://api.modrinth.com/v2/"
	DefaultShimURL    = "https://cdn.modrinth.com/wrapper/ModrinthWrapperRestiched.class"
)

// Config holds the public endpoints interpolated into generated manifests
type Config struct {
	SiteURL    string `mapstructure:"site-url"`
	APIBaseURL string `mapstructure:"api-url"`
	ShimURL    string `mapstructure:"shim-url"`
	// ResourcePackExcludes are gitignore style patterns for resource pack entries that are never merged
	ResourcePackExcludes []string `mapstructure:"resource-pack-exclude"`
}

func DefaultConfig() Config {
	return Config{
		SiteURL:    DefaultSiteURL,
		APIBaseURL: DefaultAPIBaseURL,
		ShimURL:    DefaultShimURL,
	}
}

// ForgeUpdateURL is where Forge looks for update information about the project
func (c Config) ForgeUpdateURL(project Project) string {
	return strings.Replace(c.APIBaseURL, "/v2/", "", 1) + "/updates/" + project.ID + "/forge_updates.json"
}

// Manifests groups the loader metadata generated for one project version
type Manifests struct {
	Slug          string
	VersionNumber string
	IconPath      string
	Dialect       ForgeDialect

	Fabric *FabricManifest
	Quilt  *QuiltManifest
	Forge  *ForgeManifest
}

// ForLoaders returns the manifests for the requested loaders in fabric, quilt, forge order
func (m Manifests) ForLoaders(loaders []Loader) []Manifest {
	var result []Manifest
	if slices.Contains(loaders, FabricLoader) {
		result = append(result, m.Fabric)
	}
	if slices.Contains(loaders, QuiltLoader) {
		result = append(result, m.Quilt)
	}
	if slices.Contains(loaders, ForgeLoader) {
		result = append(result, m.Forge)
	}
	return result
}

// BuildManifests fills the Fabric, Quilt and Forge manifests from project metadata
func BuildManifests(cfg Config, project Project, version Version, members []Member, dialect ForgeDialect) (Manifests, error) {
	if err := project.validate(); err != nil {
		return Manifests{}, err
	}
	if err := version.validate(); err != nil {
		return Manifests{}, err
	}
	if err := validateMembers(members); err != nil {
		return Manifests{}, err
	}

	slug := DataPackSlug(project.Slug)
	versionNumber := LoaderVersionNumber(version.VersionNumber)
	iconPath := IconPath(project)
	homepage := ProjectURL(cfg.SiteURL, project)

	if _, err := semver.NewVersion(versionNumber); err != nil {
		log.Warn("version number is not semver, fabric will warn about it", "version", versionNumber)
	}

	authors := make([]string, 0, len(members))
	contributors := make(map[string]string, len(members))
	for _, m := range members {
		authors = append(authors, m.Name)
		contributors[m.Name] = m.Role
	}

	contact := ModContact{
		Homepage: homepage,
		Sources:  project.SourceURL,
		Issues:   project.IssuesURL,
	}

	fabric := &FabricManifest{
		SchemaVersion: 1,
		ID:            slug,
		Version:       versionNumber,
		Name:          project.Title,
		Description:   project.Description,
		Authors:       authors,
		Contact:       contact,
		License:       project.License.ID,
		Icon:          iconPath,
		Environment:   "*",
		Depends: map[string]string{
			fabricResourceLoaderID: "*",
		},
	}

	quilt := &QuiltManifest{
		SchemaVersion: 1,
		QuiltLoader: QuiltLoaderSection{
			Group:   quiltGroup,
			ID:      slug,
			Version: versionNumber,
			Metadata: QuiltMetadata{
				Name:         project.Title,
				Description:  project.Description,
				Contributors: contributors,
				Contact:      contact,
				Icon:         iconPath,
			},
			IntermediateMappings: quiltIntermediateMappings,
			Depends: []QuiltDependency{
				{
					ID:       quiltResourceLoaderID,
					Versions: "*",
					Unless:   fabricResourceLoaderID,
				},
			},
		},
	}

	forge := &ForgeManifest{
		ModLoader:          dialect.ModLoader,
		LoaderVersion:      dialect.LoaderVersion,
		License:            project.License.ID,
		ShowAsResourcePack: false,
		IssueTrackerURL:    project.IssuesURL,
		Mods: []ForgeMod{
			{
				ModID:         slug,
				Version:       versionNumber,
				DisplayName:   project.Title,
				Description:   project.Description,
				LogoFile:      iconPath,
				UpdateJSONURL: cfg.ForgeUpdateURL(project),
				Credits:       forgeCredits,
				Authors:       strings.Join(authors, ", "),
				DisplayURL:    homepage,
			},
		},
	}

	return Manifests{
		Slug:          slug,
		VersionNumber: versionNumber,
		IconPath:      iconPath,
		Dialect:       dialect,
		Fabric:        fabric,
		Quilt:         quilt,
		Forge:         forge,
	}, nil
}
