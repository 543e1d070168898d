/*
Package drbg provides a deterministic random byte generator for key generation under test.

A Reader is a ChaCha20 keystream keyed by HKDF-SHA256 of a seed, so the same seed always
yields the same bytes. It is intended for reproducible tests and demos; use crypto/rand.Reader
everywhere else.
*/
package drbg

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

// binds derived keys to this use so a seed shared with something else yields an unrelated stream
const hkdfInfo = "rsa16-drbg"

// Reader is an io.Reader that produces a deterministic keystream
type Reader struct {
	cipher *chacha20.Cipher
}

// New returns a Reader seeded with seed. Any seed length is accepted.
func New(seed []byte) (*Reader, error) {
	key := make([]byte, chacha20.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, seed, nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	nonce := make([]byte, chacha20.NonceSize)

	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to create keystream: %w", err)
	}

	return &Reader{cipher: c}, nil
}

// NewFromInt is New with the big-endian encoding of seed
func NewFromInt(seed uint64) (*Reader, error) {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seed)
	return New(b)
}

// Read fills p with the next len(p) bytes of the keystream. It never fails.
func (r *Reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
