// Logsieve - Multi-File Log Timeline Tool
//
// Logsieve merges arbitrarily-encoded log files into one time-ordered,
// filterable collection of entries.
package main

import (
	"os"

	"github.com/logsieve/logsieve/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
