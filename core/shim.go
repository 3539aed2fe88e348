package core

import (
	"bytes"
	"fmt"
)

// Patch replaces the first occurrence of Find in a binary template
type Patch struct {
	Name    string
	Find    []byte
	Replace []byte
	// FixedLength rejects replacements that would change the size of the patched region
	FixedLength bool
}

// BinaryTemplate is an opaque compiled file with a fixed set of patch sites
type BinaryTemplate struct {
	Patches []Patch
}

// Apply returns a patched copy of data. Every patch site must be present.
func (t BinaryTemplate) Apply(data []byte) ([]byte, error) {
	out := append([]byte(nil), data...)
	for _, p := range t.Patches {
		if p.FixedLength && len(p.Find) != len(p.Replace) {
			return nil, fmt.Errorf("%w: %s replacement is %d bytes, site is %d", ErrShimPatchFailed, p.Name, len(p.Replace), len(p.Find))
		}
		at := bytes.Index(out, p.Find)
		if at < 0 {
			return nil, fmt.Errorf("%w: %s site not found", ErrShimPatchFailed, p.Name)
		}
		patched := make([]byte, 0, len(out)-len(p.Find)+len(p.Replace))
		patched = append(patched, out[:at]...)
		patched = append(patched, p.Replace...)
		patched = append(patched, out[at+len(p.Find):]...)
		out = patched
	}
	return out, nil
}

const (
	wrapperSlugPlaceholder = "needs1to1be1changed1modrinth1mod"
	wrapperPathPlaceholder = "/wrappera/"
)

// WrapperShimTemplate describes the two sites of the prebuilt ModrinthWrapper class: the mod id
// constant, stored as a length-prefixed UTF-8 constant, and the package path segment.
func WrapperShimTemplate(slug, sanitizedID string) (BinaryTemplate, error) {
	if len(slug) == 0 || len(slug) > 255 {
		return BinaryTemplate{}, fmt.Errorf("%w: mod id %q must be 1 to 255 bytes", ErrShimPatchFailed, slug)
	}

	return BinaryTemplate{
		Patches: []Patch{
			{
				Name:    "mod id",
				Find:    lengthPrefixed(wrapperSlugPlaceholder),
				Replace: lengthPrefixed(slug),
			},
			{
				Name:        "package path",
				Find:        []byte(wrapperPathPlaceholder),
				Replace:     []byte("/" + sanitizedID + "/"),
				FixedLength: true,
			},
		},
	}, nil
}

// WrapperShimPath is the archive path of the patched wrapper class
func WrapperShimPath(sanitizedID string) string {
	return "com/modrinth/" + sanitizedID + "/ModrinthWrapper.class"
}

func lengthPrefixed(s string) []byte {
	return append([]byte{byte(len(s))}, s...)
}
