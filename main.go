package main

import (
	"os"

	"github.com/relaykit/relay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
