package main

import (
	"os"

	"github.com/sandeepkv93/taskflowd/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
