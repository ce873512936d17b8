// permsync - Consolidate Claude Code permission settings
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/permsync

package main

import (
	"os"

	"github.com/ariel-frischer/permsync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
