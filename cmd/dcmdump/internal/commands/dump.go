// Package commands implements dcmdump's operations. There is only one
// today (dump), kept in its own package the way the CLI this tool is
// descended from groups its DICOM subcommands, so a second operation has
// somewhere to live without restructuring the CLI layer.
package commands

import (
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"

	"github.com/codeninja55/go-radx/cmd/dcmdump/internal/config"
	"github.com/codeninja55/go-radx/cmd/dcmdump/internal/ui"
	"github.com/codeninja55/go-radx/dicom"
)

// defaultTerminalWidth mirrors the core's own fallback; used when stdout
// isn't attached to a terminal or the ioctl fails.
const defaultTerminalWidth = 90

// DumpCmd implements dcmdump's only operation: parse one DICOM file and
// print its header and dataset structure.
type DumpCmd struct {
	config.DumpFlags
}

// Run executes the dump command.
func (c *DumpCmd) Run(cfg *config.GlobalConfig) error {
	if isTerminal(os.Stdout) {
		ui.PrintBanner()
	}

	logger := log.Default()
	logger.Debug("opening DICOM file", "path", c.Path)

	f, err := os.Open(c.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.Path, err)
	}
	defer f.Close()

	opts, err := c.toOptions()
	if err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger.Info("dumping DICOM file", "path", c.Path, "max_elements", opts.MaxElements, "max_sq_depth", opts.MaxSQDepth)

	if err := dicom.Parse(f, os.Stdout, opts); err != nil {
		logger.Error("parse failed", "path", c.Path, "error", err)
		return fmt.Errorf("parse %s: %w", c.Path, err)
	}

	return nil
}

// toOptions converts the kong-parsed flag surface into dicom.Options,
// keeping the core package free of any CLI-framework dependency.
func (c *DumpCmd) toOptions() (dicom.Options, error) {
	if !c.All && c.Count <= 0 {
		return dicom.Options{}, fmt.Errorf("-n must be > 0, got %d", c.Count)
	}
	if c.Depth < 1 || c.Depth > 100 {
		return dicom.Options{}, fmt.Errorf("-d must be between 1 and 100, got %d", c.Depth)
	}

	maxElements := c.Count
	if c.All {
		maxElements = math.MaxInt
	}

	filter, err := dicom.ParseFilterList(c.Filter)
	if err != nil {
		return dicom.Options{}, err
	}

	return dicom.Options{
		MaxElements:       maxElements,
		CollapseSequences: c.Collapse,
		MaxSQDepth:        c.Depth,
		ShowFullValues:    c.Full,
		Filter:            filter,
		TerminalWidth:     terminalWidth(),
	}, nil
}

// terminalWidth queries the controlling TTY's column count via
// IoctlGetWinsize, falling back to defaultTerminalWidth when stdout isn't a
// terminal or the ioctl fails.
func terminalWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return defaultTerminalWidth
	}
	return int(ws.Col)
}

// isTerminal reports whether f is attached to a terminal, so the ASCII-art
// banner never pollutes a piped or redirected dump.
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	return err == nil
}
