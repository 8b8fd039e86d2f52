package main

import (
	"os"

	"github.com/ilyakooo0/parseable-macos-sub000/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
