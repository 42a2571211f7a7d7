package app

import (
	"time"

	"distconsole/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Host    string        // console endpoint host, e.g. 127.0.0.1
	Port    int           // console endpoint port, e.g. 5900
	Key     domain.Key    // pre-shared console key
	Timeout time.Duration // TCP connect timeout; transport default when zero
	Verbose bool          // debug-level logging to stderr
}
