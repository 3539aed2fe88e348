package fileio

import (
	"path/filepath"

	"github.com/leocov-dev/dpwrap/core"
)

type ManifestWriter struct {
	dir string
}

func NewManifestWriter(dir string) ManifestWriter {
	return ManifestWriter{dir: dir}
}

// Write stores the manifest below the writer's directory at its archive path
func (m ManifestWriter) Write(manifest core.Manifest) (string, string, error) {
	result, err := manifest.Marshal()
	if err != nil {
		return "", "", err
	}

	if err := writeBytes(result.Value, filepath.Join(m.dir, filepath.FromSlash(manifest.Path()))); err != nil {
		return "", "", err
	}

	return result.HashFormat, result.Hash, nil
}

// WriteBlob stores a packaged archive at targetPath
func WriteBlob(blob *core.Blob, targetPath string) error {
	return writeBytes(blob.Data, targetPath)
}

func writeBytes(data []byte, targetPath string) error {
	f, err := CreateFile(targetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.Write(data); err != nil {
		return err
	}

	return nil
}
