package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leocov-dev/dpwrap/core"
	"github.com/leocov-dev/dpwrap/sources"
)

func setViper(t *testing.T, key string, value interface{}) {
	t.Helper()
	previous := viper.Get(key)
	viper.Set(key, value)
	t.Cleanup(func() { viper.Set(key, previous) })
}

func TestGameVersionIndex_Explicit(t *testing.T) {
	setViper(t, "game-versions", []string{"1.19", "1.16.5", "1.18.2", "1.16.5"})

	index, err := gameVersionIndex(context.Background(), sources.ModrinthAPI{})

	require.NoError(t, err)
	assert.Equal(t, core.GameVersionIndex{"1.16.5", "1.18.2", "1.19"}, index)
}

func TestGameVersionIndex_Modrinth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/tag/game_version"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"version": "1.19"}, {"version": "1.18.2"}]`))
	}))
	defer server.Close()
	setViper(t, "game-versions", []string{})
	setViper(t, "game-version-source", "modrinth")

	api, err := sources.NewModrinthAPI(server.URL + "/v2/")
	require.NoError(t, err)

	index, err := gameVersionIndex(context.Background(), api)

	require.NoError(t, err)
	assert.Equal(t, core.GameVersionIndex{"1.18.2", "1.19"}, index)
}

func TestGameVersionIndex_UnknownSource(t *testing.T) {
	setViper(t, "game-versions", []string{})
	setViper(t, "game-version-source", "curseforge")

	_, err := gameVersionIndex(context.Background(), sources.ModrinthAPI{})

	assert.Error(t, err)
}

func TestLoadSettings_ExcludeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excludes")
	require.NoError(t, os.WriteFile(path, []byte("*.psd\n"), 0o644))
	setViper(t, "resource-pack-exclude-file", path)

	cfg := loadSettings()

	assert.Contains(t, cfg.ResourcePackExcludes, "*.psd")
	assert.Contains(t, cfg.ResourcePackExcludes, ".DS_Store")
}

func TestLoadSettings_DefaultExcludes(t *testing.T) {
	setViper(t, "resource-pack-exclude-file", "")
	setViper(t, "resource-pack-exclude", []string{"*.psd"})

	cfg := loadSettings()

	assert.Contains(t, cfg.ResourcePackExcludes, "__MACOSX/**")
	assert.Contains(t, cfg.ResourcePackExcludes, ".DS_Store")
	assert.Equal(t, "*.psd", cfg.ResourcePackExcludes[len(cfg.ResourcePackExcludes)-1])
}
