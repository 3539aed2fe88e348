package core

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"github.com/leocov-dev/dpwrap/core/murmur2"
)

// GetHashImpl returns a hasher for the given format: sha1, sha256, sha512 or murmur2
func GetHashImpl(hashType string) (HashStringer, error) {
	switch strings.ToLower(hashType) {
	case "sha1":
		return &hexStringer{sha1.New()}, nil
	case "sha256":
		return &hexStringer{sha256.New()}, nil
	case "sha512":
		return &hexStringer{sha512.New()}, nil
	case "murmur2":
		return &fingerprintStringer{murmur2.New()}, nil
	}
	return nil, fmt.Errorf("hash implementation %s not found", hashType)
}

// BlobHashFormats are reported for every produced archive: Modrinth checks sha1 and sha512, CurseForge the murmur2 fingerprint
var BlobHashFormats = []string{
	"sha1",
	"sha512",
	"murmur2",
}

// HashBytes computes data's digest in each of the given formats
func HashBytes(data []byte, formats ...string) (map[string]string, error) {
	hashes := make(map[string]string, len(formats))
	for _, format := range formats {
		stringer, err := GetHashImpl(format)
		if err != nil {
			return nil, err
		}
		if _, err := stringer.Write(data); err != nil {
			return nil, err
		}
		hashes[format] = stringer.String()
	}
	return hashes, nil
}

type HashStringer interface {
	hash.Hash
	String() string
}

type hexStringer struct {
	hash.Hash
}

func (h *hexStringer) String() string {
	return hex.EncodeToString(h.Sum(nil))
}

// fingerprintStringer prints a 32 bit digest as the decimal number CurseForge displays
type fingerprintStringer struct {
	hash.Hash
}

func (h *fingerprintStringer) String() string {
	return strconv.FormatUint(uint64(binary.BigEndian.Uint32(h.Sum(nil))), 10)
}
