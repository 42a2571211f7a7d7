// Package commands defines the distconsole CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - exec     Run one console command and print the reply
//   - shell    Interactive console over a single session
//   - keygen   Generate a fresh pre-shared key
//
// # Implementation
//
// The pre-shared key is resolved once per invocation, in order: the --key
// flag, the --key-file flag, the DISTCONSOLE_KEY environment variable, and
// finally a no-echo terminal prompt when stdin is a TTY. Subcommands that
// talk to a server build the dependency graph (dialer, session service,
// logger) through internal/app.
package commands
