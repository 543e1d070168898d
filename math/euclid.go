package math

// ExtendedGCD returns g = gcd(a, b) along with Bézout coefficients x and y such that a*x + b*y = g.
//
// a and b must be non-negative. The computation is iterative: each step replaces (r0, r1) with (r1, r0 mod r1)
// and carries the coefficients along with it.
func ExtendedGCD(a int, b int) (g int, x int, y int) {
	oldR, r := a, b
	oldS, s := 1, 0
	oldT, t := 0, 1

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}

	return oldR, oldS, oldT
}

// ModInverse returns the x in [0, m) for which a*x ≡ 1 (mod m)
func ModInverse(a uint16, m uint16) (uint16, error) {
	if m == 0 {
		return 0, ErrZeroModulus
	}

	g, x, _ := ExtendedGCD(int(a), int(m))
	if g != 1 {
		return 0, ErrNoInverse
	}

	mi := int(m)
	return uint16((x%mi + mi) % mi), nil
}
