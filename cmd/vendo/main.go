package main

import (
	"os"

	"github.com/tyler-dunkel/vendo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
