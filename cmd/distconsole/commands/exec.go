package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// exec <command...>: run one console command and print the reply.
func execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run one console command and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire, err := buildApp()
			if err != nil {
				return err
			}
			defer wire.Log.Sync()

			reply, err := wire.Commands.Run(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(reply)
			return nil
		},
	}
}
