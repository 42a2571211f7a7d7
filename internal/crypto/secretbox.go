package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/nacl/secretbox"

	"distconsole/internal/domain"
)

const (
	// NonceSize is the secretbox nonce length in bytes.
	NonceSize = 24
	// Overhead is the length of the Poly1305 authentication tag appended to
	// every ciphertext. A valid ciphertext is never shorter than this.
	Overhead = secretbox.Overhead
)

// Seal encrypts and authenticates plaintext under (nonce, key) and returns
// the ciphertext, which is len(plaintext)+Overhead bytes.
func Seal(plaintext []byte, nonce *[NonceSize]byte, key *domain.Key) []byte {
	return secretbox.Seal(nil, plaintext, nonce, (*[domain.KeySize]byte)(key))
}

// Open authenticates and decrypts ciphertext under (nonce, key). A ciphertext
// shorter than the tag, or one that fails authentication (corrupted payload,
// wrong key, nonce mismatch), yields a DecodeError, never altered plaintext.
func Open(ciphertext []byte, nonce *[NonceSize]byte, key *domain.Key) ([]byte, error) {
	if len(ciphertext) < Overhead {
		return nil, &domain.DecodeError{Reason: "ciphertext shorter than authentication tag"}
	}
	plaintext, ok := secretbox.Open(nil, ciphertext, nonce, (*[domain.KeySize]byte)(key))
	if !ok {
		return nil, &domain.DecodeError{Reason: "message authentication failed"}
	}
	return plaintext, nil
}

// RandomNonce returns NonceSize cryptographically random bytes.
func RandomNonce() (nonce [NonceSize]byte, err error) {
	_, err = rand.Read(nonce[:])
	return
}
