package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/codeninja55/go-radx/cmd/dcmdump/internal/build"
	"github.com/codeninja55/go-radx/cmd/dcmdump/internal/commands"
	"github.com/codeninja55/go-radx/cmd/dcmdump/internal/config"
)

const (
	appName        = "dcmdump"
	appDescription = "Dump a DICOM Part 10 file's header and dataset structure"
)

// CLI represents the root command structure. dcmdump has a single
// operation; Dump is marked as kong's default command so a bare
// `dcmdump file.dcm` invocation runs it without naming a subcommand.
type CLI struct {
	config.GlobalConfig
	Dump commands.DumpCmd `cmd:"" default:"withargs" help:"Dump a DICOM file's header and dataset structure"`
}

// Run executes the dcmdump CLI with the provided build info.
func Run(version, commit, date string) error {
	build.SetBuildInfo(version, commit, date)

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
			"commit":  commit,
			"date":    date,
		},
	)

	logger := setupLogger(&cli.GlobalConfig)
	logger.Debug("dcmdump starting", "version", version, "commit", commit, "build_date", date)

	if err := ctx.Run(&cli.GlobalConfig); err != nil {
		logger.Error("dump failed", "error", err)
		return err
	}

	return nil
}

// setupLogger configures the global logger based on config.
func setupLogger(cfg *config.GlobalConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})

	switch cfg.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	if !cfg.Pretty {
		logger.SetFormatter(log.JSONFormatter)
	}

	log.SetDefault(logger)
	return logger
}

// ParseArgs is a convenience function for testing: it parses arguments and
// returns the CLI struct and Kong context without running the command.
func ParseArgs(args []string, version, commit, date string) (*CLI, *kong.Context, error) {
	build.SetBuildInfo(version, commit, date)

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.Vars{
			"version": version,
			"commit":  commit,
			"date":    date,
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create parser: %w", err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return cli, ctx, nil
}
