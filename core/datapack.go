package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

const (
	JavaArchiveMimeType = "application/java-archive"
	PackIconPath        = "pack.png"
)

// Blob is a finished archive along with its MIME type
type Blob struct {
	Data     []byte
	MimeType string
}

// PackageInput is everything needed to turn one data pack version into a loader jar
type PackageInput struct {
	Project     Project
	Version     Version
	PrimaryFile VersionFile
	Members     []Member
	// GameVersions is the reference list used to classify the version's Forge dialect
	GameVersions GameVersionIndex
	Loaders      []Loader
}

// CreateDataPackVersion downloads the primary file of a data pack version and returns it
// repackaged with Fabric, Quilt and Forge metadata for the requested loaders. Either a complete
// archive is returned or an error; nothing is written anywhere else.
func CreateDataPackVersion(ctx context.Context, fetcher Fetcher, cfg Config, input PackageInput) (*Blob, error) {
	if input.PrimaryFile.URL == "" {
		return nil, fmt.Errorf("%w: primary file url", ErrMissingRequiredField)
	}

	dialect := ClassifyForge(input.Version.GameVersions, input.GameVersions)

	manifests, err := BuildManifests(cfg, input.Project, input.Version, input.Members, dialect)
	if err != nil {
		return nil, err
	}

	needsShim := dialect.Legacy && slices.Contains(input.Loaders, ForgeLoader)
	var shim BinaryTemplate
	var sanitizedID string
	if needsShim {
		sanitizedID = SanitizeClassID(input.Project.ID)
		shim, err = WrapperShimTemplate(manifests.Slug, sanitizedID)
		if err != nil {
			return nil, err
		}
	}

	resourcePack, hasResourcePack := input.Version.ResourcePack()

	var primaryData, resourcePackData, shimData []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		primaryData, err = fetch(gctx, fetcher, input.PrimaryFile.URL)
		return err
	})
	if hasResourcePack {
		g.Go(func() (err error) {
			resourcePackData, err = fetch(gctx, fetcher, resourcePack.URL)
			return err
		})
	}
	if needsShim {
		g.Go(func() (err error) {
			shimData, err = fetch(gctx, fetcher, cfg.ShimURL)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	archive, err := OpenArchive(primaryData)
	if err != nil {
		return nil, fmt.Errorf("primary file: %w", err)
	}

	for _, manifest := range manifests.ForLoaders(input.Loaders) {
		result, err := manifest.Marshal()
		if err != nil {
			return nil, fmt.Errorf("failed to serialize %s: %w", manifest.Path(), err)
		}
		archive.Put(manifest.Path(), result.Value)
		log.Debug("wrote manifest", "path", manifest.Path(), result.HashFormat, result.Hash)
	}

	if needsShim {
		patched, err := shim.Apply(shimData)
		if err != nil {
			return nil, err
		}
		archive.Put(WrapperShimPath(sanitizedID), patched)
		log.Debug("injected wrapper class", "path", WrapperShimPath(sanitizedID))
	}

	if hasResourcePack {
		pack, err := OpenArchive(resourcePackData)
		if err != nil {
			return nil, fmt.Errorf("resource pack: %w", err)
		}
		copied := mergeResourcePack(archive, pack, newResourcePackFilter(cfg.ResourcePackExcludes))
		log.Debug("merged resource pack", "copied", copied, "total", pack.Len())
	}

	if icon, ok := archive.Get(PackIconPath); ok {
		archive.Put(manifests.IconPath, icon)
	}

	data, err := archive.Bytes()
	if err != nil {
		return nil, err
	}

	return &Blob{Data: data, MimeType: JavaArchiveMimeType}, nil
}

// mergeResourcePack copies every resource pack entry the destination does not already have,
// leaving out excluded paths. It returns the number of entries copied.
func mergeResourcePack(dst *Archive, pack *Archive, filter resourcePackFilter) int {
	copied := 0
	for _, entry := range pack.Entries() {
		if filter.Excluded(entry.Name) {
			continue
		}
		if dst.PutIfAbsent(entry.Name, entry.Data) {
			copied++
		}
	}
	return copied
}

func fetch(ctx context.Context, fetcher Fetcher, url string) ([]byte, error) {
	data, err := fetcher.Fetch(ctx, url)
	if err != nil {
		if errors.Is(err, ErrFetchFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, url, err)
	}
	return data, nil
}
