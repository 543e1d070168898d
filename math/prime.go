package math

// IsPrime reports whether n is prime by trial division: first by 2 and 3, then by every 6k±1 up to sqrt(n)
func IsPrime(n uint16) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	// i*i is taken in 32 bits so the bound check cannot wrap for n near 65535
	for i := uint32(5); i*i <= uint32(n); i += 6 {
		if uint32(n)%i == 0 || uint32(n)%(i+2) == 0 {
			return false
		}
	}
	return true
}

// EulerTotient returns phi(p*q) for two distinct primes p and q
func EulerTotient(p uint16, q uint16) uint32 {
	// phi <- (p - 1) * (q - 1)
	return (uint32(p) - 1) * (uint32(q) - 1)
}
