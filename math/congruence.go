package math

// check that n divides (a - b)
func CongruentModN(a uint32, b uint32, n uint32) bool {
	if n == 0 {
		return a == b
	}
	return a%n == b%n
}
