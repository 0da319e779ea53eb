package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/foelkdavid/zyfetch/pkg/logging"
	ver "github.com/foelkdavid/zyfetch/pkg/version"
)

const appName = "zyfetch"

// Flags shared between the root command and the report subcommand.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Output format (text, json, yaml, table); inferred from --output extension when omitted",
	}
	fieldsFlag = &cli.StringFlag{
		Name:  "fields",
		Usage: "Comma-separated field names to collect, * wildcards allowed (e.g. cpu,mem*)",
	}
	gpuFlag = &cli.BoolFlag{
		Name:  "gpu",
		Usage: "Run the GPU probe (the reported value stays a placeholder)",
	}
	probeTimeoutFlag = &cli.DurationFlag{
		Name:  "probe-timeout",
		Usage: "Bound the GPU probe runtime (0 = no timeout)",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging",
	}
	logJSONFlag = &cli.BoolFlag{
		Name:  "log-json",
		Usage: "Output logs in JSON format",
	}
)

// Execute runs the CLI with the process arguments and returns the exit
// code: 0 on success, 2 when the context was canceled or timed out, 1
// for everything else.
func Execute() int {
	if err := rootCmd().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return 2
		}
		return 1
	}
	return 0
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  appName,
		Usage:                 "Report local system information",
		Version:               ver.Version,
		EnableShellCompletion: true,
		Description: `Collects facts about the local host and prints them as a short report:
  - Operating system and hostname
  - Kernel version and uptime
  - Shell, CPU model, memory and disk usage

Running zyfetch with no arguments prints the classic text report. The
report subcommand takes the same flags; serve exposes the report over
HTTP.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			fieldsFlag,
			gpuFlag,
			probeTimeoutFlag,
			debugFlag,
			logJSONFlag,
		},
		Before:        setupLogging,
		Action:        runReport,
		ShellComplete: commandLister,
		Commands: []*cli.Command{
			reportCmd(),
			serveCmd(),
			versionCmd(),
		},
	}
}

// setupLogging installs the default structured logger before any
// command action runs. Logs go to stderr so report output owns stdout.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var opts []logging.Option
	if cmd.Bool("debug") {
		opts = append(opts, logging.WithLevel(slog.LevelDebug))
	}
	if cmd.Bool("log-json") {
		opts = append(opts, logging.WithJSON())
	}

	logging.SetDefaultStructuredLogger(appName, ver.Version, opts...)
	return ctx, nil
}

// commandLister prints visible command names for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Println(c.Name)
	}
}
