package console

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestIncrementNonce_CounterSteps(t *testing.T) {
	var n [NonceSize]byte
	incrementNonce(&n)
	want := [4]byte{0x00, 0x00, 0x00, 0x01}
	if !bytes.Equal(n[NonceSize-4:], want[:]) {
		t.Fatalf("counter after first increment = %x, want %x", n[NonceSize-4:], want)
	}
}

func TestIncrementNonce_WrapsOnOverflow(t *testing.T) {
	var n [NonceSize]byte
	for i := range n {
		n[i] = 0xAA
	}
	copy(n[NonceSize-4:], []byte{0xFF, 0xFF, 0xFF, 0xFF})

	incrementNonce(&n)

	if !bytes.Equal(n[NonceSize-4:], []byte{0, 0, 0, 0}) {
		t.Fatalf("counter did not wrap: %x", n[NonceSize-4:])
	}
	for _, b := range n[:NonceSize-4] {
		if b != 0xAA {
			t.Fatalf("leading nonce bytes changed on wrap: %x", n[:NonceSize-4])
		}
	}
}

func TestDeriveNonces_SymmetricAcrossPeers(t *testing.T) {
	for i := 0; i < 32; i++ {
		var a, b [NonceSize]byte
		if _, err := rand.Read(a[:]); err != nil {
			t.Fatalf("rand: %v", err)
		}
		if _, err := rand.Read(b[:]); err != nil {
			t.Fatalf("rand: %v", err)
		}

		aRead, aWrite := deriveNonces(a, b)
		bRead, bWrite := deriveNonces(b, a)

		if aRead != bWrite {
			t.Fatalf("A's read nonce %x != B's write nonce %x", aRead, bWrite)
		}
		if aWrite != bRead {
			t.Fatalf("A's write nonce %x != B's read nonce %x", aWrite, bRead)
		}
		if aRead == aWrite {
			t.Fatalf("read and write nonces collide: %x", aRead)
		}
	}
}
