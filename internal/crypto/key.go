package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"distconsole/internal/domain"
	"distconsole/internal/util/memzero"
)

// GenerateKey returns a fresh random pre-shared key.
func GenerateKey() (domain.Key, error) {
	var k domain.Key
	if _, err := rand.Read(k[:]); err != nil {
		return domain.Key{}, err
	}
	return k, nil
}

// ParseKey decodes a standard-base64 pre-shared key. The encoding must decode
// to exactly domain.KeySize bytes; both sides of the console share this key
// out of band.
func ParseKey(encoded string) (domain.Key, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return domain.Key{}, fmt.Errorf("decode key: %w", err)
	}
	defer memzero.Zero(raw)
	if len(raw) != domain.KeySize {
		return domain.Key{}, fmt.Errorf("key is %d bytes after decoding, want %d", len(raw), domain.KeySize)
	}
	var k domain.Key
	copy(k[:], raw)
	return k, nil
}

// FormatKey returns the standard base64 encoding of k, the form accepted by
// ParseKey and by dnsdist's setKey().
func FormatKey(k domain.Key) string {
	return base64.StdEncoding.EncodeToString(k[:])
}
