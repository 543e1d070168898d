/*
Package crc16 implements the CRC-16/ARC checksum: the reflected polynomial 0xA001 (0x8005 bit-reversed),
an initial value of 0, least-significant-bit-first processing and no final XOR.

The checksum is computed bit-serially without a lookup table. Check value for "123456789" is 0xBB3D.
*/
package crc16

import "hash"

// The size of a CRC-16 checksum in bytes.
const Size = 2

// Poly is the reflected form of the CRC-16 polynomial x^16 + x^15 + x^2 + 1
const Poly = 0xA001

// Update returns the result of adding the bytes in p to crc
func Update(crc uint16, p []byte) uint16 {
	for _, b := range p {
		crc ^= uint16(b)
		for i := 0; i < 8; i++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ Poly
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}

// Checksum returns the CRC-16 checksum of data
func Checksum(data []byte) uint16 {
	return Update(0, data)
}

// Hash16 is the common interface implemented by 16-bit hash functions
type Hash16 interface {
	hash.Hash
	Sum16() uint16
}

type digest struct {
	crc uint16
}

// New creates a new Hash16 computing the CRC-16 checksum.
// Its Sum method lays the value out in big-endian byte order, as hash/crc32 does.
func New() Hash16 {
	return &digest{}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = Update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum16() uint16 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum16()
	return append(in, byte(s>>8), byte(s))
}
