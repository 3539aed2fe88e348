package fileio

import (
	"os"
	"path/filepath"
)

// CreateFile creates or truncates path, creating missing parent directories
func CreateFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.Create(path)
}
