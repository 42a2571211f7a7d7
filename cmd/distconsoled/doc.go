// Command distconsoled is a development console server for local testing.
//
// It speaks the same handshake and frame format as dnsdist's console: accept
// a TCP connection, exchange nonce halves, then answer one encrypted command
// per frame. A few commands get canned replies; everything else is echoed.
// Not for production use.
package main
