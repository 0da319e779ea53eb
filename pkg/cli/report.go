package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/foelkdavid/zyfetch/pkg/collector"
	"github.com/foelkdavid/zyfetch/pkg/reporter"
	"github.com/foelkdavid/zyfetch/pkg/serializer"
	ver "github.com/foelkdavid/zyfetch/pkg/version"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "report",
		EnableShellCompletion: true,
		Usage:                 "Collect system information and print the report",
		Description: `Collects the default field set (OS, Host, Kernel, Uptime, Packages,
Shell, CPU, Memory, Disk) and prints one "Label: value" line per field.
Collection is sequential and fail-fast: the first failing field aborts
the run before anything is printed.

# Examples

Classic text report:
  zyfetch report

Only CPU and memory:
  zyfetch report --fields cpu,mem*

Structured output to a file (format inferred from the extension):
  zyfetch report --output report.json

Run the GPU probe with a bound:
  zyfetch report --gpu --probe-timeout 2s`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
			fieldsFlag,
			gpuFlag,
			probeTimeoutFlag,
		},
		Action: runReport,
	}
}

// runReport is the action behind both the report subcommand and a bare
// zyfetch invocation.
func runReport(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	if err != nil {
		return err
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	factory := collector.NewDefaultFactory()
	factory.GPUProbeTimeout = cmd.Duration("probe-timeout")

	r := &reporter.SystemReporter{
		Version:    ver.Version,
		Factory:    factory,
		Serializer: ser,
		Fields:     reporter.SplitFields(cmd.String("fields")),
		ProbeGPU:   cmd.Bool("gpu"),
	}

	return r.Report(ctx)
}
