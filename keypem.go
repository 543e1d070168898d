package rsa16

import (
	"bytes"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
)

const (
	pemTypePublic  = "RSA16 PUBLIC KEY"
	pemTypePrivate = "RSA16 PRIVATE KEY"
)

// used exclusively as a placeholder for encoding-decoding
type asn1Key struct {
	N int
	E int
	D int
}

// EncodePEM returns a PEM encoding of the key. Keys without a private exponent are written as public keys.
func (k Key) EncodePEM() (string, error) {
	// asn1.Marshal has no unsigned integer support, so widen to int first
	b, err := asn1.Marshal(asn1Key{
		N: int(k.N),
		E: int(k.E),
		D: int(k.D),
	})
	if err != nil {
		return "", fmt.Errorf("failed to DER-encode: %w", err)
	}

	blockType := pemTypePrivate
	if k.D == 0 {
		blockType = pemTypePublic
	}

	keyPEM := new(bytes.Buffer)
	err = pem.Encode(keyPEM, &pem.Block{
		Type:  blockType,
		Bytes: b,
	})
	if err != nil {
		return "", fmt.Errorf("failed to PEM-encode: %w", err)
	}

	return keyPEM.String(), nil
}

// DecodePEM returns key data from a PEM encoding produced by [Key.EncodePEM]
func DecodePEM(encoded string) (Key, error) {
	block, rest := pem.Decode([]byte(encoded))
	if block == nil || len(bytes.TrimSpace(rest)) > 0 {
		return Key{}, fmt.Errorf("%w: expected exactly one PEM block", ErrInvalidPEM)
	}
	if block.Type != pemTypePublic && block.Type != pemTypePrivate {
		return Key{}, fmt.Errorf("%w: unexpected block type %q", ErrInvalidPEM, block.Type)
	}

	var ak asn1Key
	rest, err := asn1.Unmarshal(block.Bytes, &ak)
	if err != nil {
		return Key{}, fmt.Errorf("%w: failed to unmarshal DER: %s", ErrInvalidPEM, err)
	}
	if len(rest) > 0 {
		return Key{}, fmt.Errorf("%w: trailing data after key", ErrInvalidPEM)
	}

	for _, v := range []int{ak.N, ak.E, ak.D} {
		if v < 0 || v > 0xFFFF {
			return Key{}, fmt.Errorf("%w: value %d does not fit in 16 bits", ErrInvalidPEM, v)
		}
	}
	if block.Type == pemTypePublic && ak.D != 0 {
		return Key{}, fmt.Errorf("%w: public key carries a private exponent", ErrInvalidPEM)
	}

	key := Key{
		N: uint16(ak.N),
		E: uint16(ak.E),
		D: uint16(ak.D),
	}
	if err := key.validate(); err != nil {
		return Key{}, fmt.Errorf("%w: %s", ErrInvalidPEM, err)
	}
	return key, nil
}
