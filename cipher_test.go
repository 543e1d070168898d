package rsa16

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func unhex(s string) []byte {
	b, err := hex.DecodeString(s)
	Expect(err).To(BeNil())
	return b
}

func allBytes() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

var _ = Describe("Chained encryption", func() {
	message := []byte("HELLO")

	It("Produces the known ciphertext for the textbook key", func() {
		kc := mustInit(textbookKey, DefaultIV)

		cipher, err := kc.EncryptBytes(message)
		Expect(err).To(BeNil())
		Expect(cipher).To(Equal(unhex("b5a5d9ece4a980e5d6a9")))
		Expect(kc.EncryptIV()).To(Equal(byte(0xE6)))
		Expect(kc.DecryptIV()).To(Equal(DefaultIV), "encryption must not touch the decryption chain")

		plain, err := kc.DecryptBytes(cipher)
		Expect(err).To(BeNil())
		Expect(plain).To(Equal(message))
		Expect(kc.DecryptIV()).To(Equal(byte(0xE6)))
	})

	It("Emits two bytes per input byte", func() {
		kc := mustInit(textbookKey, DefaultIV)
		for _, size := range []int{0, 1, 2, 17, 256} {
			cipher, err := kc.EncryptBytes(make([]byte, size))
			Expect(err).To(BeNil())
			Expect(cipher).To(HaveLen(2 * size))
		}
	})

	It("Does not encrypt repeated plaintext bytes to a repeated pair", func() {
		kc := mustInit(textbookKey, DefaultIV)
		cipher, err := kc.EncryptBytes([]byte("AAAA"))
		Expect(err).To(BeNil())
		Expect(cipher[0:2]).NotTo(Equal(cipher[2:4]))
	})

	It("Depends on the IV", func() {
		kc := mustInit(textbookKey, 0x01)
		cipher, err := kc.EncryptBytes(message)
		Expect(err).To(BeNil())
		Expect(cipher).To(Equal(unhex("62013349120c3a402c0d")))
	})

	It("Round-trips every byte value", func() {
		kc := mustInit(textbookKey, DefaultIV)
		cipher, err := kc.EncryptBytes(allBytes())
		Expect(err).To(BeNil())

		plain, err := kc.DecryptBytes(cipher)
		Expect(err).To(BeNil())
		Expect(plain).To(Equal(allBytes()))
	})

	It("Round-trips random buffers under every IV", func() {
		buf := make([]byte, 64)
		_, err := rand.Read(buf)
		Expect(err).To(BeNil())

		for iv := 1; iv < 256; iv++ {
			kc := mustInit(textbookKey, byte(iv))
			cipher, err := kc.EncryptBytes(buf)
			Expect(err).To(BeNil())

			plain, err := kc.DecryptBytes(cipher)
			Expect(err).To(BeNil())
			Expect(plain).To(Equal(buf))
		}
	})

	When("Encrypting the same message twice", func() {
		It("Repeats the ciphertext after a reset", func() {
			kc := mustInit(textbookKey, DefaultIV)
			first, err := kc.EncryptBytes(message)
			Expect(err).To(BeNil())

			Expect(kc.ResetIV(DefaultIV)).To(Succeed())
			second, err := kc.EncryptBytes(message)
			Expect(err).To(BeNil())
			Expect(second).To(Equal(first))
		})

		It("Continues the chain without a reset", func() {
			kc := mustInit(textbookKey, DefaultIV)
			first, err := kc.EncryptBytes(message)
			Expect(err).To(BeNil())

			second, err := kc.EncryptBytes(message)
			Expect(err).To(BeNil())
			Expect(second).To(Equal(unhex("aee618ae8aeb11a7f0eb")))
			Expect(second).NotTo(Equal(first))

			By("Decrypting both in order on the same chain")
			plain, err := kc.DecryptBytes(append(append([]byte{}, first...), second...))
			Expect(err).To(BeNil())
			Expect(plain).To(Equal(bytes.Repeat(message, 2)))
		})
	})

	It("Produces the same stream whether the message is split across calls or not", func() {
		buf := allBytes()

		whole := mustInit(textbookKey, DefaultIV)
		expected, err := whole.EncryptBytes(buf)
		Expect(err).To(BeNil())

		split := mustInit(textbookKey, DefaultIV)
		var actual []byte
		for _, chunk := range [][]byte{buf[:1], buf[1:100], buf[100:101], buf[101:]} {
			c, err := split.EncryptBytes(chunk)
			Expect(err).To(BeNil())
			actual = append(actual, c...)
		}
		Expect(actual).To(Equal(expected))

		By("Decrypting in uneven chunks")
		var plain []byte
		for _, chunk := range [][]byte{expected[:2], expected[2:300], expected[300:]} {
			p, err := split.DecryptBytes(chunk)
			Expect(err).To(BeNil())
			plain = append(plain, p...)
		}
		Expect(plain).To(Equal(buf))
	})

	It("Fails to recover the message from a context on a different chain", func() {
		enc := mustInit(textbookKey, DefaultIV)
		cipher, err := enc.EncryptBytes(allBytes())
		Expect(err).To(BeNil())

		dec := mustInit(textbookKey, DefaultIV^0xFF)
		plain, err := dec.DecryptBytes(cipher)
		Expect(err).To(BeNil())
		Expect(plain).NotTo(Equal(allBytes()))
	})

	Context("Preconditions", func() {
		It("Rejects an odd-length ciphertext without advancing the chain", func() {
			kc := mustInit(textbookKey, DefaultIV)
			_, err := kc.DecryptBytes([]byte{1, 2, 3})
			Expect(err).To(MatchError(ErrOddCiphertext))
			Expect(kc.DecryptIV()).To(Equal(DefaultIV))
		})

		It("Lets a public-only context encrypt but not decrypt", func() {
			pub := mustInit(textbookKey.Public(), DefaultIV)
			cipher, err := pub.EncryptBytes(message)
			Expect(err).To(BeNil())

			_, err = pub.DecryptBytes(cipher)
			Expect(err).To(MatchError(ErrNoPrivateExponent))
			_, err = pub.DecryptBytes(nil)
			Expect(err).To(MatchError(ErrNoPrivateExponent))

			By("Handing the ciphertext to a private-only context")
			priv := mustInit(textbookKey.Private(), DefaultIV)
			plain, err := priv.DecryptBytes(cipher)
			Expect(err).To(BeNil())
			Expect(plain).To(Equal(message))
		})

		It("Lets a private-only context decrypt but not encrypt", func() {
			priv := mustInit(textbookKey.Private(), DefaultIV)
			_, err := priv.EncryptBytes(message)
			Expect(err).To(MatchError(ErrNoPublicExponent))
			_, err = priv.EncryptBytes(nil)
			Expect(err).To(MatchError(ErrNoPublicExponent))
			Expect(priv.EncryptIV()).To(Equal(DefaultIV))
		})
	})
})
