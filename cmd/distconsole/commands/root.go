package commands

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"distconsole/internal/app"
	"distconsole/internal/crypto"
	"distconsole/internal/domain"
	"distconsole/internal/keystore"
	"distconsole/internal/util/memzero"
)

// keyEnvVar supplies the pre-shared key when no flag is given, keeping it out
// of shell history and process listings.
const keyEnvVar = "DISTCONSOLE_KEY"

var (
	host    string
	port    int
	keyB64  string
	keyFile string
	timeout time.Duration
	verbose bool
)

func Execute() error {
	root := &cobra.Command{
		Use:           "distconsole",
		Short:         "Encrypted dnsdist console client",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&host, "host", "127.0.0.1", "console server host")
	root.PersistentFlags().IntVarP(&port, "port", "p", 5900, "console server port")
	root.PersistentFlags().StringVarP(&keyB64, "key", "k", "", "pre-shared key (base64)")
	root.PersistentFlags().StringVar(&keyFile, "key-file", "", "file holding the base64 pre-shared key")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "TCP connect timeout")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(execCmd(), shellCmd(), keygenCmd())
	return root.Execute()
}

// buildApp resolves the key and wires the dependency graph for subcommands
// that talk to a server.
func buildApp() (*app.Wire, error) {
	key, err := resolveKey()
	if err != nil {
		return nil, err
	}
	return app.NewWire(app.Config{
		Host:    host,
		Port:    port,
		Key:     key,
		Timeout: timeout,
		Verbose: verbose,
	})
}

// resolveKey finds the pre-shared key from flags, environment, or an
// interactive prompt, in that order.
func resolveKey() (domain.Key, error) {
	if keyB64 != "" {
		return crypto.ParseKey(keyB64)
	}
	if keyFile != "" {
		return keystore.Load(keyFile)
	}
	if env := os.Getenv(keyEnvVar); env != "" {
		return crypto.ParseKey(env)
	}
	if term.IsTerminal(int(syscall.Stdin)) {
		return promptKey()
	}
	return domain.Key{}, errors.New("no key given: use --key, --key-file, or " + keyEnvVar)
}

// promptKey reads the base64 key from the terminal without echoing it.
func promptKey() (domain.Key, error) {
	fmt.Fprint(os.Stderr, "Console key: ")
	line, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return domain.Key{}, err
	}
	defer memzero.Zero(line)
	return crypto.ParseKey(string(line))
}
