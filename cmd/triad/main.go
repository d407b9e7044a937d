// Command triad partitions a randomly ranked population into stable teams of three.
package main

import (
	"os"

	"github.com/katalvlaran/triad/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
