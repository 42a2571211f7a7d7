package console

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"unicode/utf8"

	"distconsole/internal/crypto"
	"distconsole/internal/domain"
)

// headerSize is the length prefix on every frame: a big-endian uint32
// counting ciphertext bytes.
const headerSize = 4

// ErrFrameTooLarge is returned when a command would seal to a ciphertext
// longer than the 32-bit length header can express. The length is checked
// before any encryption happens; it is never silently truncated.
var ErrFrameTooLarge = errors.New("console: frame exceeds 32-bit length header")

// Session is an established encrypted console connection. It owns its
// transport exclusively and is not safe for concurrent use: the protocol is
// strictly sequential, one Send followed by one Receive.
type Session struct {
	conn       io.ReadWriteCloser
	key        domain.Key
	writeNonce [NonceSize]byte
	readNonce  [NonceSize]byte
}

// Open performs the nonce-exchange handshake on a freshly connected channel
// and returns a live Session. On any error the handshake is aborted and no
// Session is returned; the caller still owns conn and should close it.
//
// Open writes before it reads. The peer must do the same or the exchange
// deadlocks; see the package documentation.
func Open(conn io.ReadWriteCloser, key domain.Key) (*Session, error) {
	ours, err := crypto.RandomNonce()
	if err != nil {
		return nil, &domain.TransportError{Op: "generate handshake nonce", Err: err}
	}
	if _, err := conn.Write(ours[:]); err != nil {
		return nil, &domain.TransportError{Op: "write handshake nonce", Err: err}
	}
	var theirs [NonceSize]byte
	if _, err := io.ReadFull(conn, theirs[:]); err != nil {
		return nil, &domain.TransportError{Op: "read handshake nonce", Err: err}
	}

	s := &Session{conn: conn, key: key}
	s.readNonce, s.writeNonce = deriveNonces(ours, theirs)
	return s, nil
}

// Send seals one command under the current write nonce and transmits it as a
// length-prefixed frame. The write nonce advances exactly once after a
// successful write.
func (s *Session) Send(command string) error {
	if uint64(len(command))+crypto.Overhead > math.MaxUint32 {
		return ErrFrameTooLarge
	}

	ciphertext := crypto.Seal([]byte(command), &s.writeNonce, &s.key)

	// One buffered write so the header and body cannot be torn by an error
	// between them.
	frame := make([]byte, headerSize+len(ciphertext))
	binary.BigEndian.PutUint32(frame[:headerSize], uint32(len(ciphertext)))
	copy(frame[headerSize:], ciphertext)
	if _, err := s.conn.Write(frame); err != nil {
		return &domain.TransportError{Op: "write command frame", Err: err}
	}

	incrementNonce(&s.writeNonce)
	return nil
}

// Receive reads exactly one frame, opens it under the current read nonce and
// returns the plaintext as text. The read nonce advances exactly once per
// frame read off the wire, whether or not it decodes — the counter tracks
// frames received, matching the peer's per-send advance — so a DecodeError
// leaves the session nonce-synchronized but effectively dead.
func (s *Session) Receive() (string, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(s.conn, header[:]); err != nil {
		return "", &domain.TransportError{Op: "read response length", Err: err}
	}
	length := binary.BigEndian.Uint32(header[:])

	ciphertext := make([]byte, length)
	if _, err := io.ReadFull(s.conn, ciphertext); err != nil {
		return "", &domain.TransportError{Op: "read response frame", Err: err}
	}

	plaintext, err := crypto.Open(ciphertext, &s.readNonce, &s.key)
	incrementNonce(&s.readNonce)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", &domain.DecodeError{Reason: "response is not valid UTF-8"}
	}
	return string(plaintext), nil
}

// Close closes the owned transport, aborting any in-flight read.
func (s *Session) Close() error {
	return s.conn.Close()
}

// Exec opens a session on conn, runs a single command and returns the reply.
// On success the session (and with it conn) is closed before returning; if
// the handshake fails the caller still owns conn.
func Exec(conn io.ReadWriteCloser, key domain.Key, command string) (string, error) {
	s, err := Open(conn, key)
	if err != nil {
		return "", err
	}
	defer s.Close()

	if err := s.Send(command); err != nil {
		return "", err
	}
	return s.Receive()
}
