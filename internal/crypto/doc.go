// Package crypto exposes the minimal primitives used by the console client.
//
// Contents
//
//   - Authenticated encryption with NaCl secretbox: XSalsa20-Poly1305 with a
//     24-byte nonce, 32-byte key and 16-byte tag (Seal, Open)
//   - Cryptographically random nonce generation (RandomNonce)
//   - Pre-shared key generation, parsing and display encoding (GenerateKey,
//     ParseKey, FormatKey)
//
// # Notes
//
// secretbox is the Go counterpart of libsodium's crypto_secretbox, so frames
// sealed here interoperate with servers built on either library. The
// primitive needs no process-wide initialisation. Callers should treat keys
// as sensitive and rely on memzero.Zero for transient encodings.
package crypto
