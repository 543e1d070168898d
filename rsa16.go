package rsa16

import (
	"fmt"

	rsamath "github.com/bastionzero/rsa16/math"
)

// A Key is an RSA16 key triple. Either exponent may be 0, in which case the key only supports the other direction.
type Key struct {
	N uint16 // modulus
	E uint16 // public exponent
	D uint16 // private exponent
}

// Public returns the public half (n, e) of the key
func (k Key) Public() Key {
	return Key{N: k.N, E: k.E}
}

// Private returns the private half (n, d) of the key
func (k Key) Private() Key {
	return Key{N: k.N, D: k.D}
}

func (k Key) validate() error {
	if k.N <= 255 {
		return fmt.Errorf("%w: got %d", ErrModulusTooSmall, k.N)
	}
	if k.E == 0 && k.D == 0 {
		return ErrEmptyKey
	}
	return nil
}

// A KeyContext pairs a Key with independent chaining state for encryption and decryption.
//
// Chained operations mutate the context, so a KeyContext must not be used for EncryptBytes or DecryptBytes
// from more than one goroutine at a time. Signing never touches the chaining state.
type KeyContext struct {
	key   Key
	ivEnc byte
	ivDec byte
}

// Init returns a KeyContext for key whose encryption and decryption chains both start at iv
func Init(key Key, iv byte) (*KeyContext, error) {
	return NewKeyContext(key, Config{IV: iv})
}

// NewKeyContext returns a KeyContext for key configured by cfg
func NewKeyContext(key Key, cfg Config) (*KeyContext, error) {
	if err := key.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &KeyContext{
		key:   key,
		ivEnc: cfg.IV,
		ivDec: cfg.IV,
	}, nil
}

// ResetIV restarts both chains at iv. The key is left untouched.
func (kc *KeyContext) ResetIV(iv byte) error {
	if iv == 0 {
		return ErrZeroIV
	}
	kc.ivEnc = iv
	kc.ivDec = iv
	return nil
}

func (kc *KeyContext) Key() Key {
	return kc.key
}

// EncryptIV returns the current state of the encryption chain
func (kc *KeyContext) EncryptIV() byte {
	return kc.ivEnc
}

// DecryptIV returns the current state of the decryption chain
func (kc *KeyContext) DecryptIV() byte {
	return kc.ivDec
}

func (kc *KeyContext) requirePublic() error {
	if kc.key.E == 0 {
		return ErrNoPublicExponent
	}
	return nil
}

func (kc *KeyContext) requirePrivate() error {
	if kc.key.D == 0 {
		return ErrNoPrivateExponent
	}
	return nil
}

// raise base to the public exponent
func (kc *KeyContext) expPublic(base uint16) (uint16, error) {
	if err := kc.requirePublic(); err != nil {
		return 0, err
	}
	return rsamath.ModExp(base, kc.key.E, kc.key.N)
}

// raise base to the private exponent
func (kc *KeyContext) expPrivate(base uint16) (uint16, error) {
	if err := kc.requirePrivate(); err != nil {
		return 0, err
	}
	return rsamath.ModExp(base, kc.key.D, kc.key.N)
}

// Encrypt encrypts a single byte with the public key (n, e). No chaining state is involved.
func (kc *KeyContext) Encrypt(message byte) (uint16, error) {
	return kc.expPublic(uint16(message))
}

// Decrypt decrypts a single value produced by [KeyContext.Encrypt] with the private key (n, d)
func (kc *KeyContext) Decrypt(cipher uint16) (byte, error) {
	m, err := kc.expPrivate(cipher)
	if err != nil {
		return 0, err
	}
	return byte(m), nil
}
