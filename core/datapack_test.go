package core

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	primaryURL      = "https://cdn.example.com/data/primary.zip"
	resourcePackURL = "https://cdn.example.com/data/resources.zip"
)

func testInput(loaders ...Loader) PackageInput {
	return PackageInput{
		Project:      testProject(),
		Version:      Version{VersionNumber: "2.0", GameVersions: []string{"1.19"}},
		PrimaryFile:  VersionFile{URL: primaryURL},
		Members:      testMembers(),
		GameVersions: testIndex,
		Loaders:      loaders,
	}
}

func primaryZip(t *testing.T, extra ...zipFile) []byte {
	files := append([]zipFile{
		{"pack.mcmeta", `{"pack":{"pack_format":10}}`},
		{"data/my_pack/functions/load.mcfunction", "say loaded"},
	}, extra...)
	return makeZip(t, files...)
}

func TestCreateDataPackVersionFabricOnly(t *testing.T) {
	fetcher := newMapFetcher(map[string][]byte{primaryURL: primaryZip(t)})

	blob, err := CreateDataPackVersion(context.Background(), fetcher, testConfig(), testInput(FabricLoader))
	require.NoError(t, err)
	assert.Equal(t, "application/java-archive", blob.MimeType)

	names, contents := readZip(t, blob.Data)
	assert.Equal(t, []string{
		"pack.mcmeta",
		"data/my_pack/functions/load.mcfunction",
		"fabric.mod.json",
	}, names)
	assert.Equal(t, "say loaded", string(contents["data/my_pack/functions/load.mcfunction"]))
	assert.Equal(t, []string{primaryURL}, fetcher.Requested())

	var fabric FabricManifest
	require.NoError(t, json.Unmarshal(contents["fabric.mod.json"], &fabric))
	assert.Equal(t, "mr_my_pack", fabric.ID)
}

func TestCreateDataPackVersionAllLoadersModern(t *testing.T) {
	fetcher := newMapFetcher(map[string][]byte{primaryURL: primaryZip(t)})

	blob, err := CreateDataPackVersion(context.Background(), fetcher, testConfig(), testInput(AllLoaders...))
	require.NoError(t, err)

	names, contents := readZip(t, blob.Data)
	for _, path := range []string{FabricManifestPath, QuiltManifestPath, ForgeManifestPath} {
		count := 0
		for _, name := range names {
			if name == path {
				count++
			}
		}
		assert.Equal(t, 1, count, path)
	}

	var quilt QuiltManifest
	require.NoError(t, json.Unmarshal(contents[QuiltManifestPath], &quilt))
	assert.Equal(t, "mr_my_pack", quilt.QuiltLoader.ID)

	var forge ForgeManifest
	require.NoError(t, toml.Unmarshal(contents[ForgeManifestPath], &forge))
	assert.Equal(t, "javafml", forge.ModLoader)
	assert.Equal(t, "[25,)", forge.LoaderVersion)

	assert.Len(t, names, 5)
	assert.NotContains(t, fetcher.Requested(), testConfig().ShimURL)
}

func TestCreateDataPackVersionLegacyForgeInjectsShim(t *testing.T) {
	cfg := testConfig()
	fetcher := newMapFetcher(map[string][]byte{
		primaryURL:  primaryZip(t),
		cfg.ShimURL: fakeWrapperClass(),
	})

	input := testInput(ForgeLoader)
	input.Version.GameVersions = []string{"1.17"}

	blob, err := CreateDataPackVersion(context.Background(), fetcher, cfg, input)
	require.NoError(t, err)

	_, contents := readZip(t, blob.Data)

	var forge ForgeManifest
	require.NoError(t, toml.Unmarshal(contents[ForgeManifestPath], &forge))
	assert.Equal(t, "lowcodefml", forge.ModLoader)
	assert.Equal(t, "[40,)", forge.LoaderVersion)

	class, ok := contents["com/modrinth/AANobbMI/ModrinthWrapper.class"]
	require.True(t, ok)
	expected, err := WrapperShimTemplate("mr_my_pack", "AANobbMI")
	require.NoError(t, err)
	patched, err := expected.Apply(fakeWrapperClass())
	require.NoError(t, err)
	assert.Equal(t, patched, class)
}

func TestCreateDataPackVersionLegacyWithoutForgeSkipsShim(t *testing.T) {
	fetcher := newMapFetcher(map[string][]byte{primaryURL: primaryZip(t)})

	input := testInput(FabricLoader, QuiltLoader)
	input.Version.GameVersions = []string{"1.17"}

	blob, err := CreateDataPackVersion(context.Background(), fetcher, testConfig(), input)
	require.NoError(t, err)

	names, _ := readZip(t, blob.Data)
	assert.NotContains(t, names, ForgeManifestPath)
	assert.Equal(t, []string{primaryURL}, fetcher.Requested())
}

func TestCreateDataPackVersionUnmatchedGameVersionUsesLegacy(t *testing.T) {
	cfg := testConfig()
	fetcher := newMapFetcher(map[string][]byte{
		primaryURL:  primaryZip(t),
		cfg.ShimURL: fakeWrapperClass(),
	})

	input := testInput(ForgeLoader)
	input.Version.GameVersions = []string{"1.99-unknown"}

	blob, err := CreateDataPackVersion(context.Background(), fetcher, cfg, input)
	require.NoError(t, err)

	names, _ := readZip(t, blob.Data)
	assert.Contains(t, names, "com/modrinth/AANobbMI/ModrinthWrapper.class")
}

func TestCreateDataPackVersionMergesResourcePack(t *testing.T) {
	cfg := testConfig()
	cfg.ResourcePackExcludes = []string{"*.psd"}

	fetcher := newMapFetcher(map[string][]byte{
		primaryURL: primaryZip(t),
		resourcePackURL: makeZip(t,
			zipFile{"pack.mcmeta", `{"resource":true}`},
			zipFile{"assets/my_pack/textures/item/gem.png", "gem"},
			zipFile{"assets/.mcassetsroot", ""},
			zipFile{".mcassetsroot", ""},
			zipFile{"assets/my_pack/textures/item/gem.psd", "layers"},
			zipFile{"fabric.mod.json", "{}"},
		),
	})

	input := testInput(FabricLoader)
	input.Version.Files = []VersionFile{
		{URL: primaryURL},
		{URL: resourcePackURL, FileType: RequiredResourcePack},
	}

	blob, err := CreateDataPackVersion(context.Background(), fetcher, cfg, input)
	require.NoError(t, err)

	names, contents := readZip(t, blob.Data)
	assert.Equal(t, []string{
		"pack.mcmeta",
		"data/my_pack/functions/load.mcfunction",
		"fabric.mod.json",
		"assets/my_pack/textures/item/gem.png",
	}, names)
	assert.Equal(t, `{"pack":{"pack_format":10}}`, string(contents["pack.mcmeta"]))
	assert.Equal(t, "gem", string(contents["assets/my_pack/textures/item/gem.png"]))
	assert.NotEqual(t, "{}", string(contents["fabric.mod.json"]))
}

func TestCreateDataPackVersionDuplicatesIcon(t *testing.T) {
	icon := string([]byte{0x89, 'P', 'N', 'G', 0x00, 0x01})
	fetcher := newMapFetcher(map[string][]byte{
		primaryURL: primaryZip(t, zipFile{"pack.png", icon}),
	})

	blob, err := CreateDataPackVersion(context.Background(), fetcher, testConfig(), testInput(FabricLoader))
	require.NoError(t, err)

	_, contents := readZip(t, blob.Data)
	assert.Equal(t, icon, string(contents["pack.png"]))
	assert.Equal(t, icon, string(contents["my-pack_pack.png"]))
}

func TestCreateDataPackVersionErrors(t *testing.T) {
	t.Run("Primary fetch fails", func(t *testing.T) {
		fetcher := newMapFetcher(map[string][]byte{})
		_, err := CreateDataPackVersion(context.Background(), fetcher, testConfig(), testInput(FabricLoader))
		assert.True(t, errors.Is(err, ErrFetchFailed), "got %v", err)
	})

	t.Run("Resource pack fetch fails", func(t *testing.T) {
		fetcher := newMapFetcher(map[string][]byte{primaryURL: primaryZip(t)})
		input := testInput(FabricLoader)
		input.Version.Files = []VersionFile{{URL: resourcePackURL, FileType: RequiredResourcePack}}

		_, err := CreateDataPackVersion(context.Background(), fetcher, testConfig(), input)
		assert.True(t, errors.Is(err, ErrFetchFailed), "got %v", err)
	})

	t.Run("Primary file is not a zip", func(t *testing.T) {
		fetcher := newMapFetcher(map[string][]byte{primaryURL: []byte("not a zip")})
		_, err := CreateDataPackVersion(context.Background(), fetcher, testConfig(), testInput(FabricLoader))
		assert.True(t, errors.Is(err, ErrInvalidArchive), "got %v", err)
	})

	t.Run("Resource pack is not a zip", func(t *testing.T) {
		fetcher := newMapFetcher(map[string][]byte{
			primaryURL:      primaryZip(t),
			resourcePackURL: []byte("not a zip"),
		})
		input := testInput(FabricLoader)
		input.Version.Files = []VersionFile{{URL: resourcePackURL, FileType: RequiredResourcePack}}

		_, err := CreateDataPackVersion(context.Background(), fetcher, testConfig(), input)
		assert.True(t, errors.Is(err, ErrInvalidArchive), "got %v", err)
	})

	t.Run("Shim has no patch sites", func(t *testing.T) {
		cfg := testConfig()
		fetcher := newMapFetcher(map[string][]byte{
			primaryURL:  primaryZip(t),
			cfg.ShimURL: []byte("not the wrapper class"),
		})
		input := testInput(ForgeLoader)
		input.Version.GameVersions = []string{"1.16"}

		_, err := CreateDataPackVersion(context.Background(), fetcher, cfg, input)
		assert.True(t, errors.Is(err, ErrShimPatchFailed), "got %v", err)
	})

	t.Run("Missing fields fail before fetching", func(t *testing.T) {
		fetcher := newMapFetcher(map[string][]byte{primaryURL: primaryZip(t)})
		input := testInput(FabricLoader)
		input.Project.License = License{}

		_, err := CreateDataPackVersion(context.Background(), fetcher, testConfig(), input)
		assert.True(t, errors.Is(err, ErrMissingRequiredField), "got %v", err)
		assert.Empty(t, fetcher.Requested())
	})

	t.Run("Missing primary file url", func(t *testing.T) {
		fetcher := newMapFetcher(map[string][]byte{})
		input := testInput(FabricLoader)
		input.PrimaryFile = VersionFile{}

		_, err := CreateDataPackVersion(context.Background(), fetcher, testConfig(), input)
		assert.True(t, errors.Is(err, ErrMissingRequiredField), "got %v", err)
	})
}

func TestCreateDataPackVersionOverHTTP(t *testing.T) {
	archive := primaryZip(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/primary.zip":
			_, _ = w.Write(archive)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	input := testInput(FabricLoader)
	input.PrimaryFile.URL = server.URL + "/primary.zip"

	blob, err := CreateDataPackVersion(context.Background(), HTTPFetcher{}, testConfig(), input)
	require.NoError(t, err)
	names, _ := readZip(t, blob.Data)
	assert.Contains(t, names, FabricManifestPath)

	input.PrimaryFile.URL = server.URL + "/missing.zip"
	_, err = CreateDataPackVersion(context.Background(), HTTPFetcher{}, testConfig(), input)
	assert.True(t, errors.Is(err, ErrFetchFailed), "got %v", err)
}
