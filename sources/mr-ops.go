package sources

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	modrinthApi "codeberg.org/jmansfield/go-modrinth/modrinth"

	"github.com/leocov-dev/dpwrap/core"
)

// ModrinthVersion is a project version as served by the Modrinth version endpoints
type ModrinthVersion struct {
	ID            string         `json:"id"`
	ProjectID     string         `json:"project_id"`
	Name          string         `json:"name"`
	VersionNumber string         `json:"version_number"`
	GameVersions  []string       `json:"game_versions"`
	Loaders       []string       `json:"loaders"`
	DatePublished string         `json:"date_published"`
	Files         []ModrinthFile `json:"files"`
}

type ModrinthFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Primary  bool   `json:"primary"`
	FileType string `json:"file_type"`
}

// ToCoreVersion keeps the fields used to generate loader metadata
func (v ModrinthVersion) ToCoreVersion() core.Version {
	files := make([]core.VersionFile, 0, len(v.Files))
	for _, f := range v.Files {
		files = append(files, core.VersionFile{URL: f.URL, FileType: f.FileType})
	}
	return core.Version{
		VersionNumber: v.VersionNumber,
		GameVersions:  v.GameVersions,
		Files:         files,
	}
}

// PrimaryFile returns the file flagged as primary, or the first file
func (v ModrinthVersion) PrimaryFile() (ModrinthFile, error) {
	if len(v.Files) == 0 {
		return ModrinthFile{}, errors.New("version doesn't have any files attached")
	}
	var file = v.Files[0]
	// Prefer the primary file
	for _, f := range v.Files {
		if f.Primary {
			file = f
			break
		}
	}
	return file, nil
}

// ResolveModrinthVersion finds a version by id or version number
func ResolveModrinthVersion(versions []ModrinthVersion, ref string) (ModrinthVersion, error) {
	for _, v := range versions {
		if v.ID == ref {
			return v, nil
		}
	}
	for _, v := range versions {
		if v.VersionNumber == ref {
			return v, nil
		}
	}
	return ModrinthVersion{}, fmt.Errorf("version %s not found", ref)
}

// NewPackageInput assembles the input of core.CreateDataPackVersion from Modrinth records
func NewPackageInput(
	project core.Project,
	version ModrinthVersion,
	members []core.Member,
	index core.GameVersionIndex,
	loaders []core.Loader,
) (core.PackageInput, error) {
	primary, err := version.PrimaryFile()
	if err != nil {
		return core.PackageInput{}, err
	}

	return core.PackageInput{
		Project:      project,
		Version:      version.ToCoreVersion(),
		PrimaryFile:  core.VersionFile{URL: primary.URL, FileType: primary.FileType},
		Members:      members,
		GameVersions: index,
		Loaders:      loaders,
	}, nil
}

// ProjectFromModrinth converts a go-modrinth project, tolerating absent optional fields
func ProjectFromModrinth(project *modrinthApi.Project) core.Project {
	result := core.Project{
		ID:          deref(project.ID),
		Slug:        GetModrinthProjectSlug(project),
		Title:       deref(project.Title),
		Description: deref(project.Description),
		SourceURL:   deref(project.SourceURL),
		IssuesURL:   deref(project.IssuesURL),
		ProjectType: deref(project.ProjectType),
	}
	if project.Licence != nil {
		result.License.ID = deref(project.Licence.ID)
	}
	return result
}

func GetModrinthProjectSlug(project *modrinthApi.Project) string {
	if project.Slug != nil {
		return *project.Slug
	}
	return core.SlugifyName(deref(project.Title))
}

var mrProjectTypes = []string{"mod", "plugin", "datapack", "resourcepack", "modpack", "shader", "project"}

// ParseModrinthProjectRef accepts a slug, an id or a project page URL
func ParseModrinthProjectRef(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		for _, t := range mrProjectTypes {
			if p == t && i+1 < len(parts) {
				return parts[i+1]
			}
		}
	}
	return raw
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
