// Package murmur2 implements the whitespace-insensitive MurmurHash2 variant CurseForge uses as a file fingerprint
package murmur2

import (
	"encoding/binary"
	"hash"

	"github.com/aviddiviner/go-murmur"
)

const seed = 1

type Murmur2CF struct {
	buf []byte
}

func New() hash.Hash32 {
	return &Murmur2CF{}
}

// Write buffers p, dropping tab, newline, carriage return and space bytes
func (m *Murmur2CF) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == 9 || b == 10 || b == 13 || b == 32 {
			continue
		}
		m.buf = append(m.buf, b)
	}
	return len(p), nil
}

func (m *Murmur2CF) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, m.Sum32())
}

func (m *Murmur2CF) Reset() {
	m.buf = nil
}

func (m *Murmur2CF) Size() int {
	return 4
}

func (m *Murmur2CF) BlockSize() int {
	return 4
}

func (m *Murmur2CF) Sum32() uint32 {
	return murmur.MurmurHash2(m.buf, seed)
}
