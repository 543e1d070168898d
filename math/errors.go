package math

import "errors"

var (
	// ErrZeroModulus is returned when an operation is asked to reduce modulo 0.
	ErrZeroModulus = errors.New("math: modulus must be non-zero")

	// ErrNoInverse is returned by ModInverse when a and m are not coprime.
	ErrNoInverse = errors.New("math: modular inverse does not exist")
)
