package console

import (
	"encoding/binary"

	"distconsole/internal/crypto"
)

// NonceSize is the length of a direction nonce, fixed by secretbox.
const NonceSize = crypto.NonceSize

// deriveNonces builds the two direction nonces from the handshake halves.
// The peer runs the same derivation with the arguments naturally swapped, so
// our read nonce equals its write nonce and vice versa.
func deriveNonces(ours, theirs [NonceSize]byte) (read, write [NonceSize]byte) {
	copy(read[:NonceSize/2], ours[:NonceSize/2])
	copy(read[NonceSize/2:], theirs[NonceSize/2:])
	copy(write[:NonceSize/2], theirs[:NonceSize/2])
	copy(write[NonceSize/2:], ours[NonceSize/2:])
	return
}

// incrementNonce advances a direction nonce to its next value: the last four
// bytes are a big-endian counter that steps by one, wrapping to zero on
// overflow. The leading bytes never change for the life of the session.
func incrementNonce(nonce *[NonceSize]byte) {
	counter := binary.BigEndian.Uint32(nonce[NonceSize-4:])
	binary.BigEndian.PutUint32(nonce[NonceSize-4:], counter+1)
}
