package console_test

import (
	"errors"
	"net"
	"testing"

	"distconsole/internal/domain"
	"distconsole/internal/protocol/console"
)

func loopbackPair(t *testing.T) (net.Conn, net.Conn) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	type result struct {
		conn net.Conn
		err  error
	}
	accepted := make(chan result, 1)
	go func() {
		c, err := ln.Accept()
		accepted <- result{c, err}
	}()

	client, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	r := <-accepted
	if r.err != nil {
		client.Close()
		t.Fatalf("accept: %v", r.err)
	}

	t.Cleanup(func() {
		client.Close()
		r.conn.Close()
	})
	return client, r.conn
}

func testKey() domain.Key {
	var k domain.Key
	for i := range k {
		k[i] = byte(255 - i)
	}
	return k
}

// Both peers run the identical handshake and derivation, so frames sealed on
// one side must open on the other in both directions.
func TestOpen_HandshakeAgreesAcrossPeers(t *testing.T) {
	clientConn, serverConn := loopbackPair(t)
	key := testKey()

	type opened struct {
		sess *console.Session
		err  error
	}
	serverSide := make(chan opened, 1)
	go func() {
		s, err := console.Open(serverConn, key)
		serverSide <- opened{s, err}
	}()

	client, err := console.Open(clientConn, key)
	if err != nil {
		t.Fatalf("client Open: %v", err)
	}
	sv := <-serverSide
	if sv.err != nil {
		t.Fatalf("server Open: %v", sv.err)
	}
	server := sv.sess

	if err := client.Send("show version"); err != nil {
		t.Fatalf("client Send: %v", err)
	}
	got, err := server.Receive()
	if err != nil {
		t.Fatalf("server Receive: %v", err)
	}
	if got != "show version" {
		t.Fatalf("server received %q", got)
	}

	if err := server.Send("dnsdist 1.7.0"); err != nil {
		t.Fatalf("server Send: %v", err)
	}
	reply, err := client.Receive()
	if err != nil {
		t.Fatalf("client Receive: %v", err)
	}
	if reply != "dnsdist 1.7.0" {
		t.Fatalf("reply = %q", reply)
	}
}

func TestOpen_ShortHandshakeIsTransportError(t *testing.T) {
	clientConn, serverConn := loopbackPair(t)

	go func() {
		// Send less than a full nonce, then hang up.
		serverConn.Write([]byte{1, 2, 3})
		serverConn.Close()
	}()

	_, err := console.Open(clientConn, testKey())
	var transportErr *domain.TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
}

func TestExec_OneCommand(t *testing.T) {
	clientConn, serverConn := loopbackPair(t)
	key := testKey()

	go func() {
		sess, err := console.Open(serverConn, key)
		if err != nil {
			return
		}
		defer sess.Close()
		cmd, err := sess.Receive()
		if err != nil {
			return
		}
		sess.Send("ran: " + cmd)
	}()

	out, err := console.Exec(clientConn, key, "setRules()")
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if out != "ran: setRules()" {
		t.Fatalf("Exec = %q", out)
	}
}

func TestExec_WrongKeyIsDecodeError(t *testing.T) {
	clientConn, serverConn := loopbackPair(t)

	serverKey := testKey()
	var clientKey domain.Key // all zeros, deliberately different

	go func() {
		sess, err := console.Open(serverConn, serverKey)
		if err != nil {
			return
		}
		defer sess.Close()
		// The command will not authenticate; reply with something sealed
		// under the server's key so the client's open fails too.
		sess.Receive()
		sess.Send("unauthorized")
	}()

	_, err := console.Exec(clientConn, clientKey, "whoami")
	var decodeErr *domain.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("err = %v, want DecodeError", err)
	}
}
