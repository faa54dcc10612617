package main

import (
	"os"

	"github.com/gsd-build/get-shit-done-cc/cmd/get-shit-done-cc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.ReportError(err)
		os.Exit(1)
	}
}
