// Package console implements the encrypted, length-framed request/response
// protocol spoken by the dnsdist administrative console.
//
// # Overview
//
// A session runs over a single duplex byte channel (normally TCP) and a
// 32-byte pre-shared key. It has two layers:
//
//  1. Handshake: each peer writes 24 cryptographically random bytes and reads
//     the peer's 24 bytes. Two independent direction nonces are derived from
//     the halves — read nonce = ours[:12] ++ theirs[12:], write nonce =
//     theirs[:12] ++ ours[12:]. Each peer contributes half of every nonce, so
//     neither side alone can force nonce reuse, and the two directions can
//     never start from the same raw nonce.
//  2. Frames: one command or one reply is a 4-byte big-endian ciphertext
//     length followed by the ciphertext, sealed with secretbox under the
//     current direction nonce and the shared key.
//
// After every send the write nonce advances by one; after every received
// frame the read nonce advances by one, whether or not the frame decoded.
// The counter lives in the last four bytes of the nonce, big-endian, wrapping
// at 2^32; a nonce value is never used twice within a session.
//
// # Conventions
//
// The handshake carries no acknowledgement or ordering negotiation: both
// peers must write their random value before blocking on the read, or the
// exchange deadlocks. That convention is assumed, not enforced, by the
// protocol. Exchanges are strictly sequential — send, then receive — and a
// session that returns a DecodeError should be discarded.
package console
