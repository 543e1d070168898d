package rsa16

import "errors"

var (
	// ErrModulusTooSmall is returned when a key's modulus cannot hold every byte value as a distinct residue
	ErrModulusTooSmall = errors.New("rsa16: modulus must be greater than 255")

	// ErrEmptyKey is returned when a key has neither a public nor a private exponent
	ErrEmptyKey = errors.New("rsa16: key has no exponents")

	// ErrZeroIV is returned when a chaining IV of 0 is supplied. A zero IV turns the chaining feedback into a no-op.
	ErrZeroIV = errors.New("rsa16: chaining IV must be non-zero")

	// ErrNoPublicExponent is returned when encrypting or verifying with a private-only key
	ErrNoPublicExponent = errors.New("rsa16: key has no public exponent")

	// ErrNoPrivateExponent is returned when decrypting or signing with a public-only key
	ErrNoPrivateExponent = errors.New("rsa16: key has no private exponent")

	// ErrOddCiphertext is returned when a ciphertext is not a whole number of 16-bit values
	ErrOddCiphertext = errors.New("rsa16: ciphertext length must be even")

	// ErrOddSignature is returned when a signature is not a whole number of 16-bit values
	ErrOddSignature = errors.New("rsa16: signature length must be even")

	// ErrSignatureLength is returned when a signature is not exactly twice as long as its message
	ErrSignatureLength = errors.New("rsa16: signature length must be twice the message length")

	// ErrKeyInvariant is returned when key generation reaches a state its arithmetic should make impossible.
	// It indicates a bug rather than bad input, and retrying will not help.
	ErrKeyInvariant = errors.New("rsa16: key generation invariant violated")

	// ErrInvalidPEM is returned when a PEM block does not hold an RSA16 key
	ErrInvalidPEM = errors.New("rsa16: invalid PEM-encoded key")
)
