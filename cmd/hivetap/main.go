package main

import (
	"os"

	"github.com/datazip-inc/hivetap/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
