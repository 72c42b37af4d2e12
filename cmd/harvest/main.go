package main

import (
	"fmt"
	"os"

	"github.com/appengine-ltd/harvest-calc/cmd/harvest/commands"
)

// version, commit, date are injected at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	root := commands.NewRootCmd(commands.BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
	})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
