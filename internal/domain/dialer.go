package domain

import (
	"context"
	"net"
)

// Dialer opens the reliable byte channel a console session runs over. The
// session layer consumes the result purely as a duplex stream; connect
// timeouts and socket tuning are the dialer's concern.
type Dialer interface {
	Dial(ctx context.Context, host string, port int) (net.Conn, error)
}
