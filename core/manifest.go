package core

import (
	"bytes"
	"encoding/json"
)

const (
	FabricManifestPath = "fabric.mod.json"
	QuiltManifestPath  = "quilt.mod.json"
	ForgeManifestPath  = "META-INF/mods.toml"

	manifestHashFormat = "sha256"
)

type MarshalResult struct {
	Value      []byte
	HashFormat string
	Hash       string
}

func (m MarshalResult) String() string {
	return string(m.Value)
}

// Manifest is a loader metadata file that is written into the archive at a fixed path
type Manifest interface {
	Path() string
	Marshal() (MarshalResult, error)
}

func hashedResult(value []byte) (MarshalResult, error) {
	result := MarshalResult{
		Value:      value,
		HashFormat: manifestHashFormat,
	}

	stringer, err := GetHashImpl(result.HashFormat)
	if err != nil {
		return result, err
	}

	if _, err := stringer.Write(result.Value); err != nil {
		return result, err
	}

	result.Hash = stringer.String()
	return result, nil
}

// marshalJSON encodes v compactly, leaving &, < and > unescaped
func marshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
