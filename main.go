package main

import (
	"os"

	"github.com/ekozhina/bridgeway/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
