package command

import (
	"context"

	"go.uber.org/zap"

	"distconsole/internal/domain"
	"distconsole/internal/protocol/console"
)

// Service executes console commands against a single endpoint.
//
// It handles:
//   - Dialing the endpoint through the configured dialer.
//   - Opening the encrypted session (handshake, nonce derivation).
//   - Running one send/receive exchange per command.
type Service struct {
	dialer domain.Dialer
	key    domain.Key
	host   string
	port   int
	log    *zap.Logger
}

// New constructs a Service for host:port using the given dialer and key.
func New(dialer domain.Dialer, key domain.Key, host string, port int, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		dialer: dialer,
		key:    key,
		host:   host,
		port:   port,
		log:    log,
	}
}

// Run connects, executes a single command, and returns the reply. The
// connection and session are torn down before returning; every call is a
// fresh handshake.
func (s *Service) Run(ctx context.Context, cmd string) (string, error) {
	sess, err := s.Connect(ctx)
	if err != nil {
		return "", err
	}
	defer sess.Close()

	if err := sess.Send(cmd); err != nil {
		return "", err
	}
	reply, err := sess.Receive()
	if err != nil {
		return "", err
	}
	s.log.Debug("command executed", zap.Int("command_len", len(cmd)), zap.Int("reply_len", len(reply)))
	return reply, nil
}

// Connect dials the endpoint and returns a live session for sequential
// exchanges. The session owns the connection; closing it releases both.
func (s *Service) Connect(ctx context.Context) (*console.Session, error) {
	s.log.Debug("connecting", zap.String("host", s.host), zap.Int("port", s.port))
	conn, err := s.dialer.Dial(ctx, s.host, s.port)
	if err != nil {
		return nil, err
	}

	sess, err := console.Open(conn, s.key)
	if err != nil {
		conn.Close()
		return nil, err
	}
	s.log.Debug("session established", zap.String("remote", conn.RemoteAddr().String()))
	return sess, nil
}
