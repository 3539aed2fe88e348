package core

import (
	"fmt"
	"strings"
)

// Project is the subset of a published project's metadata used to describe it to mod loaders
type Project struct {
	ID          string
	Slug        string
	Title       string
	Description string
	License     License
	SourceURL   string
	IssuesURL   string
	ProjectType string
}

type License struct {
	ID string
}

// Version is a single published release of a project
type Version struct {
	VersionNumber string
	GameVersions  []string
	Files         []VersionFile
}

// VersionFile is a downloadable file attached to a Version
type VersionFile struct {
	URL      string
	FileType string
}

const RequiredResourcePack = "required-resource-pack"

// ResourcePack returns the first file flagged as a required resource pack, if any
func (v Version) ResourcePack() (VersionFile, bool) {
	for _, f := range v.Files {
		if f.FileType == RequiredResourcePack {
			return f, true
		}
	}
	return VersionFile{}, false
}

// Member is a credited team member of a project
type Member struct {
	Name string
	Role string
}

// Loader names a mod loader ecosystem
type Loader string

const (
	FabricLoader Loader = "fabric"
	QuiltLoader  Loader = "quilt"
	ForgeLoader  Loader = "forge"
)

var AllLoaders = []Loader{FabricLoader, QuiltLoader, ForgeLoader}

// ParseLoader accepts a loader name in any case
func ParseLoader(name string) (Loader, error) {
	l := Loader(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllLoaders {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown loader %q", name)
}

func (p Project) validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: project id", ErrMissingRequiredField)
	}
	if p.Slug == "" {
		return fmt.Errorf("%w: project slug", ErrMissingRequiredField)
	}
	if p.License.ID == "" {
		return fmt.Errorf("%w: project license id", ErrMissingRequiredField)
	}
	return nil
}

func (v Version) validate() error {
	if v.VersionNumber == "" {
		return fmt.Errorf("%w: version number", ErrMissingRequiredField)
	}
	return nil
}

func validateMembers(members []Member) error {
	for i, m := range members {
		if m.Name == "" {
			return fmt.Errorf("%w: name of member %d", ErrMissingRequiredField, i)
		}
	}
	return nil
}
