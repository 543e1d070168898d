package rsa16

import (
	"encoding/binary"

	"github.com/bastionzero/rsa16/crc16"
)

// Sign signs a single byte with the private key (n, d)
func (kc *KeyContext) Sign(message byte) (uint16, error) {
	return kc.expPrivate(uint16(message))
}

// Verify recovers the byte that signature was made over, using the public key (n, e)
func (kc *KeyContext) Verify(signature uint16) (byte, error) {
	m, err := kc.expPublic(signature)
	if err != nil {
		return 0, err
	}
	return byte(m), nil
}

// ValidateSignature reports whether signature is a valid signature of message.
// An invalid signature is not an error.
func (kc *KeyContext) ValidateSignature(message byte, signature uint16) (bool, error) {
	m, err := kc.Verify(signature)
	if err != nil {
		return false, err
	}
	return m == message, nil
}

// SignBytes signs every byte of message independently. The signature is twice as long as message, each
// 16-bit value stored low byte first. Unlike encryption there is no chaining.
func (kc *KeyContext) SignBytes(message []byte) ([]byte, error) {
	if err := kc.requirePrivate(); err != nil {
		return nil, err
	}

	signature := make([]byte, 2*len(message))
	for i, m := range message {
		s, err := kc.Sign(m)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint16(signature[2*i:], s)
	}
	return signature, nil
}

// VerifyBytes recovers the message a signature produced by [KeyContext.SignBytes] was made over
func (kc *KeyContext) VerifyBytes(signature []byte) ([]byte, error) {
	if err := kc.requirePublic(); err != nil {
		return nil, err
	}
	if len(signature)%2 != 0 {
		return nil, ErrOddSignature
	}

	message := make([]byte, len(signature)/2)
	for i := range message {
		m, err := kc.Verify(binary.LittleEndian.Uint16(signature[2*i:]))
		if err != nil {
			return nil, err
		}
		message[i] = m
	}
	return message, nil
}

// ValidateSignatureBytes reports whether signature is a valid [KeyContext.SignBytes] signature of message.
// It stops at the first byte that does not match.
func (kc *KeyContext) ValidateSignatureBytes(message []byte, signature []byte) (bool, error) {
	if err := kc.requirePublic(); err != nil {
		return false, err
	}
	if len(signature) != 2*len(message) {
		return false, ErrSignatureLength
	}

	for i, want := range message {
		ok, err := kc.ValidateSignature(want, binary.LittleEndian.Uint16(signature[2*i:]))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// SignCRC computes the CRC-16 of data and signs its two bytes separately.
// The result packs the signature of the high byte into the upper 16 bits and that of the low byte into the lower 16.
func (kc *KeyContext) SignCRC(data []byte) (uint32, error) {
	crc := crc16.Checksum(data)

	lower, err := kc.Sign(byte(crc))
	if err != nil {
		return 0, err
	}
	upper, err := kc.Sign(byte(crc >> 8))
	if err != nil {
		return 0, err
	}

	return uint32(upper)<<16 | uint32(lower), nil
}

// ValidateSignatureCRC reports whether signature is a valid [KeyContext.SignCRC] signature of data.
// Both halves must validate.
func (kc *KeyContext) ValidateSignatureCRC(data []byte, signature uint32) (bool, error) {
	crc := crc16.Checksum(data)

	lower, err := kc.ValidateSignature(byte(crc), uint16(signature))
	if err != nil {
		return false, err
	}
	upper, err := kc.ValidateSignature(byte(crc>>8), uint16(signature>>16))
	if err != nil {
		return false, err
	}

	return lower && upper, nil
}
