package core

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type zipFile struct {
	Name    string
	Content string
}

func makeZip(t *testing.T, files ...zipFile) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		require.NoError(t, err)
		_, err = io.WriteString(w, f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// readZip returns the entry names in archive order and the content of each entry
func readZip(t *testing.T, data []byte) ([]string, map[string][]byte) {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	contents := make(map[string][]byte)
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		names = append(names, f.Name)
		contents[f.Name] = content
	}
	return names, contents
}

// mapFetcher serves fixed responses and records which URLs were requested
type mapFetcher struct {
	mu        sync.Mutex
	files     map[string][]byte
	requested []string
}

func newMapFetcher(files map[string][]byte) *mapFetcher {
	return &mapFetcher{files: files}
}

func (f *mapFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requested = append(f.requested, url)
	data, ok := f.files[url]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", url)
	}
	return data, nil
}

func (f *mapFetcher) Requested() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requested...)
}
