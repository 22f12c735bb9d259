package main

import (
	"os"

	"routerswitch/cmd"
)

// Set via -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version string
	commit  string
	date    string
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	os.Exit(cmd.Execute())
}
