package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"distconsole/internal/domain"
)

// shell: interactive console over a single session. Exchanges are strictly
// sequential; each line is one send/receive cycle on the same session.
func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive console over a single session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wire, err := buildApp()
			if err != nil {
				return err
			}
			defer wire.Log.Sync()

			sess, err := wire.Commands.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer sess.Close()

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					fmt.Println()
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "quit" || line == "exit" {
					return nil
				}

				if err := sess.Send(line); err != nil {
					return err
				}
				reply, err := sess.Receive()
				if err != nil {
					// A decode failure leaves the nonces synchronized but the
					// session is not expected to recover; drop it.
					var decodeErr *domain.DecodeError
					if errors.As(err, &decodeErr) {
						return fmt.Errorf("session unusable after decode failure: %w", err)
					}
					return err
				}
				fmt.Println(reply)
			}
		},
	}
}
