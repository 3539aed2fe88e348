package core

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
)

// ArchiveEntry is a single file or directory of an Archive
type ArchiveEntry struct {
	Name     string
	Data     []byte
	Modified time.Time
}

func (e ArchiveEntry) IsDir() bool {
	return strings.HasSuffix(e.Name, "/")
}

// Archive is an in-memory zip archive. Entry names are unique and keep their insertion order.
type Archive struct {
	entries map[string]*ArchiveEntry
	order   []string
}

func NewArchive() *Archive {
	return &Archive{entries: make(map[string]*ArchiveEntry)}
}

// OpenArchive reads every entry of a zip file into memory
func OpenArchive(data []byte) (*Archive, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	archive := NewArchive()
	for _, f := range reader.File {
		content, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArchive, f.Name, err)
		}
		archive.put(ArchiveEntry{Name: f.Name, Data: content, Modified: f.Modified})
	}
	return archive, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// has reports whether a file (not a directory) exists at name
func (a *Archive) has(name string) bool {
	e, ok := a.entries[name]
	return ok && !e.IsDir()
}

// Get returns the content stored at name
func (a *Archive) Get(name string) ([]byte, bool) {
	e, ok := a.entries[name]
	if !ok || e.IsDir() {
		return nil, false
	}
	return e.Data, true
}

// Put stores data at name, replacing any existing entry
func (a *Archive) Put(name string, data []byte) {
	a.put(ArchiveEntry{Name: name, Data: data})
}

// PutIfAbsent stores data at name only when nothing is stored there yet
func (a *Archive) PutIfAbsent(name string, data []byte) bool {
	if _, ok := a.entries[name]; ok {
		return false
	}
	a.Put(name, data)
	return true
}

func (a *Archive) put(entry ArchiveEntry) {
	if entry.Modified.IsZero() {
		entry.Modified = time.Now()
	}
	if _, ok := a.entries[entry.Name]; !ok {
		a.order = append(a.order, entry.Name)
	}
	a.entries[entry.Name] = &entry
}

// Entries returns every entry in insertion order
func (a *Archive) Entries() []ArchiveEntry {
	result := make([]ArchiveEntry, 0, len(a.order))
	for _, name := range a.order {
		result = append(result, *a.entries[name])
	}
	return result
}

// names returns the entry names in insertion order
func (a *Archive) names() []string {
	return append([]string(nil), a.order...)
}

func (a *Archive) Len() int {
	return len(a.order)
}

// Bytes serializes the archive as a deflated zip file
func (a *Archive) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	for _, name := range a.order {
		entry := a.entries[name]
		header := &zip.FileHeader{
			Name:     entry.Name,
			Method:   zip.Deflate,
			Modified: entry.Modified,
		}
		if entry.IsDir() {
			header.Method = zip.Store
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			_ = zw.Close()
			return nil, fmt.Errorf("failed to add %s to archive: %w", name, err)
		}
		if entry.IsDir() {
			continue
		}
		if _, err := w.Write(entry.Data); err != nil {
			_ = zw.Close()
			return nil, fmt.Errorf("failed to write %s to archive: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
