// Package transport connects to console endpoints over TCP.
//
// The rest of the client consumes the result purely as a duplex byte stream;
// this package owns connect timeouts and socket tuning. No deadline is set on
// reads or writes once connected — a silent peer blocks the caller until the
// session is closed.
package transport

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"distconsole/internal/domain"
)

// DefaultTimeout bounds the TCP connect. It does not apply after the
// connection is established.
const DefaultTimeout = 5 * time.Second

// Dialer opens TCP connections to a console endpoint.
type Dialer struct {
	// Timeout bounds the connect; DefaultTimeout when zero.
	Timeout time.Duration
}

var _ domain.Dialer = (*Dialer)(nil)

// Dial connects to host:port. A malformed endpoint yields an AddressError
// before any network activity; connect failures yield a TransportError. The
// returned connection has Nagle's algorithm disabled so small console frames
// are not delayed.
func (d *Dialer) Dial(ctx context.Context, host string, port int) (net.Conn, error) {
	if host == "" {
		return nil, &domain.AddressError{Addr: host, Err: errors.New("host is empty")}
	}
	if port < 1 || port > 65535 {
		addr := net.JoinHostPort(host, strconv.Itoa(port))
		return nil, &domain.AddressError{Addr: addr, Err: errors.New("port out of range 1-65535")}
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	nd := net.Dialer{Timeout: timeout}
	conn, err := nd.DialContext(ctx, "tcp", addr)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return nil, &domain.AddressError{Addr: addr, Err: err}
		}
		return nil, &domain.TransportError{Op: "connect to " + addr, Err: err}
	}

	if tc, ok := conn.(*net.TCPConn); ok {
		if err := tc.SetNoDelay(true); err != nil {
			conn.Close()
			return nil, &domain.TransportError{Op: "tune connection", Err: err}
		}
	}
	return conn, nil
}
