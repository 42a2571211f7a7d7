package domain

// KeySize is the length in bytes of the console pre-shared key.
const KeySize = 32

// Key is the symmetric pre-shared secret for a console endpoint. It is fixed
// for the life of a session, supplied out of band, and must never be logged
// or displayed.
type Key [KeySize]byte

// Slice returns the key as a byte slice without copying.
func (k *Key) Slice() []byte { return k[:] }
