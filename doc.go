/*
Package rsa16 implements RSA with artificially small 16-bit keys, for teaching and experimenting with the mechanics of
public-key cryptography on byte-oriented data.

A 16-bit modulus can be factored by hand. Nothing in this package is secure, and none of it should protect real data.

# Keys

A key is a triple (n, e, d). The modulus n is the product of two distinct primes p and q drawn from [16, 255],
and always exceeds 255 so that every byte value is its own residue mod n. The public exponent e is coprime to
phi(n) = (p-1)(q-1) and the private exponent d is its inverse mod phi(n):

	key, err := rsa16.GenerateKeys(rand.Reader)

Key generation draws all of its randomness from the io.Reader it is given. For reproducible keys, pass a seeded
reader from the drbg package instead of crypto/rand.

Keys can be stored with [Key.EncodePEM] and loaded with [DecodePEM]. [Key.Public] and [Key.Private] strip a key down to
one direction, which is how a context that can only encrypt (or only decrypt) is built.

# Chained encryption

A [KeyContext] wraps a key together with two independent chaining IVs, one for each direction:

	kc, err := rsa16.Init(key, rsa16.DefaultIV)
	cipher, err := kc.EncryptBytes(message)
	plain, err := kc.DecryptBytes(cipher)

Every plaintext byte becomes a 16-bit ciphertext value, serialized low byte first, so the ciphertext is twice as long as
the plaintext. A running feedback byte is folded both into the value that is exponentiated and into the bytes that are
emitted. This works like a cipher-feedback mode operating one byte at a time, and it keeps identical plaintext bytes from
always producing identical ciphertext pairs.

The feedback value carries over between calls. Encrypting the same message twice gives two different ciphertexts
unless [KeyContext.ResetIV] is called in between, and a ciphertext can only be decrypted by a context whose decryption
chain is in the same state the encryption chain was in. For the same reason a KeyContext is not safe for concurrent
chained use.

# Signatures

Signing is the private-exponent operation applied to each byte independently, with no chaining:

	sig, err := kc.SignBytes(message)
	ok, err := kc.ValidateSignatureBytes(message, sig)

For a fixed-size signature over a message of any length, [KeyContext.SignCRC] signs the two bytes of the message's
CRC-16 and packs both signatures into a uint32. [KeyContext.ValidateSignatureCRC] checks it.

A signature that does not match is reported as false rather than as an error. Errors are reserved for calls that could
never succeed, such as an odd-length ciphertext or signing with a public-only key.
*/
package rsa16
