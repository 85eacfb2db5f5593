package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/olimci/mlseed/cmd"
)

func main() {
	// No signal context: Ctrl-C inside the activated shell must not tear it down.
	if err := cmd.Execute(context.Background(), os.Args); err != nil {
		log.Error(cmd.Describe(err), "err", err)
		os.Exit(1)
	}
}
