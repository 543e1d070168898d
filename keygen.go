package rsa16

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	logging "github.com/ipfs/go-log/v2"

	rsamath "github.com/bastionzero/rsa16/math"
)

var log = logging.Logger("rsa16")

const (
	// bounds (inclusive) on the primes p and q
	minPrime = 16
	maxPrime = 255

	// every byte value must be a distinct residue mod n
	minModulus = 256
)

// GenerateKeys returns a random key triple (n, e, d) drawn from random.
//
// p and q are distinct primes in [16, 255] with p*q > 255, e is drawn uniformly from [2, phi-1] until it is coprime
// to phi = (p-1)(q-1), and d is the inverse of e mod phi. Pass crypto/rand.Reader for real randomness, or a seeded
// drbg.Reader for reproducible keys.
func GenerateKeys(random io.Reader) (Key, error) {
	key, _, _, err := generateKey(random)
	return key, err
}

// InitWithRandomKey returns a KeyContext around a freshly generated key
func InitWithRandomKey(random io.Reader, iv byte) (*KeyContext, error) {
	key, err := GenerateKeys(random)
	if err != nil {
		return nil, err
	}
	return Init(key, iv)
}

// generateKey also returns the primes behind the key, which are otherwise discarded
func generateKey(random io.Reader) (key Key, p uint16, q uint16, err error) {
	p, q, err = randomPrimePair(random)
	if err != nil {
		return
	}

	phi := rsamath.EulerTotient(p, q)

	e, err := randomExponent(random, phi)
	if err != nil {
		return
	}

	// randomExponent only returns e coprime to phi, so this cannot fail unless the arithmetic is broken
	d, err := rsamath.ModInverse(e, uint16(phi))
	if err != nil {
		err = fmt.Errorf("%w: e=%d has no inverse mod %d: %s", ErrKeyInvariant, e, phi, err)
		return
	}

	key = Key{
		N: p * q,
		E: e,
		D: d,
	}
	log.Debugf("generated key with n=%d, e=%d", key.N, key.E)
	return
}

// returns two distinct primes whose product is at least minModulus
func randomPrimePair(random io.Reader) (p uint16, q uint16, err error) {
	for attempt := 1; ; attempt++ {
		p, err = randomPrime(random)
		if err != nil {
			return
		}

		for {
			q, err = randomPrime(random)
			if err != nil {
				return
			}
			if q != p {
				break
			}
		}

		if uint32(p)*uint32(q) >= minModulus {
			log.Debugf("found primes after %d attempt(s)", attempt)
			return
		}
		log.Debugf("rejected primes %d and %d: modulus %d is too small", p, q, uint32(p)*uint32(q))
	}
}

// rejection-samples a prime in [minPrime, maxPrime]
func randomPrime(random io.Reader) (uint16, error) {
	for {
		candidate, err := randomInRange(random, minPrime, maxPrime)
		if err != nil {
			return 0, err
		}

		if rsamath.IsPrime(candidate) {
			return candidate, nil
		}
	}
}

// rejection-samples an e in [2, phi-1] that is coprime to phi
func randomExponent(random io.Reader, phi uint32) (uint16, error) {
	rejected := 0
	for {
		e, err := randomInRange(random, 2, uint16(phi-1))
		if err != nil {
			return 0, err
		}

		if g, _, _ := rsamath.ExtendedGCD(int(e), int(phi)); g == 1 {
			log.Debugf("chose public exponent after rejecting %d candidate(s)", rejected)
			return e, nil
		}
		rejected++
	}
}

// returns a uniformly random number in [lo, hi]
func randomInRange(random io.Reader, lo uint16, hi uint16) (uint16, error) {
	span := big.NewInt(int64(hi) - int64(lo) + 1)

	r, err := rand.Int(random, span)
	if err != nil {
		return 0, fmt.Errorf("failed to read from randomness source: %w", err)
	}

	return lo + uint16(r.Int64()), nil
}
