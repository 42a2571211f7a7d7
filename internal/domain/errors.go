package domain

import "fmt"

// The console client distinguishes three error kinds. Callers match them with
// errors.As; none are retried internally, retry policy belongs to the caller.

// AddressError reports a malformed or unusable target address. It is produced
// by the connection-setup layer before any bytes are exchanged.
type AddressError struct {
	Addr string
	Err  error
}

func (e *AddressError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("address %q: %v", e.Addr, e.Err)
	}
	return fmt.Sprintf("address %q is invalid", e.Addr)
}

func (e *AddressError) Unwrap() error { return e.Err }

// TransportError reports an I/O failure on the console channel: connect
// timeout, short read or write, peer reset.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a frame that was read off the wire in full but could
// not be authenticated, decrypted, or interpreted as text. A session that has
// returned a DecodeError keeps its nonce bookkeeping consistent with the peer
// but should be discarded; there is no useful recovery.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode: %s: %v", e.Reason, e.Err)
	}
	return "decode: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }
