/*
Package math holds the small-integer number theory behind 16-bit RSA: square-and-multiply
exponentiation, the extended Euclidean algorithm, modular inverses and a deterministic primality test.

Every value fits in 16 bits, but products are always taken in 32 bits before they are reduced.
*/
package math

// ModExp returns (base ^ exponent) mod modulus using square-and-multiply.
//
// base is reduced modulo modulus before the first multiplication. An exponent of 0 yields 1 mod modulus,
// so the result is 0 whenever modulus is 1. A modulus of 0 is rejected with [ErrZeroModulus].
func ModExp(base uint16, exponent uint16, modulus uint16) (uint16, error) {
	if modulus == 0 {
		return 0, ErrZeroModulus
	}

	m := uint32(modulus)
	result := 1 % m
	power := uint32(base) % m

	for exponent > 0 {
		if exponent&1 == 1 {
			result = (result * power) % m
		}
		power = (power * power) % m
		exponent >>= 1
	}

	return uint16(result), nil
}
