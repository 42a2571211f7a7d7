package main

import (
	"os"

	"distconsole/cmd/distconsole/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
