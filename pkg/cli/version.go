package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/foelkdavid/zyfetch/pkg/serializer"
	ver "github.com/foelkdavid/zyfetch/pkg/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:                  "version",
		EnableShellCompletion: true,
		Usage:                 "Print build information",
		Description: `Prints the binary name, semantic version, commit, and build date.
Values are injected at build time with ldflags; a source build reports
"dev" with unknown commit and date.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
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

			return ser.Serialize(ctx, ver.Get(appName))
		},
	}
}
