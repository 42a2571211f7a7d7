package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"distconsole/internal/crypto"
	"distconsole/internal/keystore"
)

// keygen: generate a fresh pre-shared key, printed or written to a file.
// The same base64 form is accepted by dnsdist's setKey().
func keygenCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a fresh pre-shared console key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			if out != "" {
				if err := keystore.Save(out, key); err != nil {
					return err
				}
				fmt.Printf("Key written to %s\n", out)
				return nil
			}
			fmt.Println(crypto.FormatKey(key))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the key to this file (0600) instead of stdout")
	return cmd
}
