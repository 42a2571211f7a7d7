// Package command runs administrative commands against a console endpoint.
//
// It dials the endpoint, performs the encrypted handshake, and exposes both
// one-shot execution (Run) and a live session for interactive use (Connect).
package command
