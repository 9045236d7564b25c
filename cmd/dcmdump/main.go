// Command dcmdump dumps a DICOM Part 10 file's File Meta Information and
// main dataset structure to stdout, one line per element.
package main

import (
	"os"

	"github.com/codeninja55/go-radx/cmd/dcmdump/internal/cli"
)

// version, commit, and date are injected at build time via
// `-ldflags "-X main.version=... -X main.commit=... -X main.date=..."`.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Run(version, commit, date); err != nil {
		os.Exit(1)
	}
}
