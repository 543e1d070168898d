package rsa16

// EncryptBytes encrypts message byte by byte with the public key, chaining each byte to the one before it.
//
// For every plaintext byte m, with prev the running chain value:
//
//	c    = (m XOR prev)^e mod n
//	lo   = (c & 0xFF) XOR prev
//	hi   = (c >> 8) XOR prev
//	prev = m XOR hi
//
// The ciphertext is twice as long as message, low byte first. The chain starts at the context's encryption IV
// and the IV is advanced to the final chain value, so the next call continues where this one stopped.
// Identical plaintext bytes therefore do not always encrypt to identical pairs.
func (kc *KeyContext) EncryptBytes(message []byte) ([]byte, error) {
	if err := kc.requirePublic(); err != nil {
		return nil, err
	}

	prev := kc.ivEnc
	cipher := make([]byte, 2*len(message))

	for i, m := range message {
		// m XOR prev is at most 255, so it is always a distinct residue below n
		c, err := kc.expPublic(uint16(m ^ prev))
		if err != nil {
			return nil, err
		}

		lo := byte(c) ^ prev
		hi := byte(c>>8) ^ prev
		cipher[2*i] = lo
		cipher[2*i+1] = hi

		prev = m ^ hi
	}

	kc.ivEnc = prev
	return cipher, nil
}

// DecryptBytes reverses [KeyContext.EncryptBytes]. cipher must hold a whole number of (low, high) pairs.
//
// The decryption chain mirrors the encryption chain byte for byte, so ciphertexts must be decrypted in the
// order they were produced, from a context whose decryption IV matches the encrypting context's starting IV.
func (kc *KeyContext) DecryptBytes(cipher []byte) ([]byte, error) {
	if err := kc.requirePrivate(); err != nil {
		return nil, err
	}
	if len(cipher)%2 != 0 {
		return nil, ErrOddCiphertext
	}

	prev := kc.ivDec
	message := make([]byte, len(cipher)/2)

	for i := range message {
		lo := cipher[2*i]
		hi := cipher[2*i+1]

		c := uint16(lo^prev) | uint16(hi^prev)<<8
		m, err := kc.expPrivate(c)
		if err != nil {
			return nil, err
		}

		message[i] = byte(m) ^ prev
		prev = message[i] ^ hi
	}

	kc.ivDec = prev
	return message, nil
}
