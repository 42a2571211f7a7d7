package app

import (
	"go.uber.org/zap"

	"distconsole/internal/services/command"
	"distconsole/internal/transport"
)

// Wire bundles the dialer, service and logger for the CLI.
type Wire struct {
	Commands *command.Service
	Dialer   *transport.Dialer
	Log      *zap.Logger
}

// NewWire constructs the dependency graph from cfg. The caller should defer
// Log.Sync().
func NewWire(cfg Config) (*Wire, error) {
	log, err := NewLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	dialer := &transport.Dialer{Timeout: cfg.Timeout}
	svc := command.New(dialer, cfg.Key, cfg.Host, cfg.Port, log)

	return &Wire{
		Commands: svc,
		Dialer:   dialer,
		Log:      log,
	}, nil
}
