package main

import (
	"os"

	"clausemap/cmd/provincectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
