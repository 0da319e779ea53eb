package collector

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
	"github.com/foelkdavid/zyfetch/pkg/report"
)

// GPUCollector probes for VGA devices by running lspci through a shell
// pipeline. The captured output is only logged at debug level; the
// reported value stays a placeholder until real formatting lands.
type GPUCollector struct {
	// Command overrides the probe invocation for testing. Empty means
	// sh -c "lspci | grep VGA".
	Command []string

	// Timeout bounds how long the probe may run. Zero means no timeout.
	Timeout time.Duration
}

// Collect spawns the probe, waits for it to exit and captures its
// stdout. A non-zero exit status is an error, including grep finding
// no VGA device at all.
func (c *GPUCollector) Collect(ctx context.Context) (report.Field, error) {
	if err := ctx.Err(); err != nil {
		return report.Field{}, err
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	command := c.Command
	if len(command) == 0 {
		command = []string{"sh", "-c", "lspci | grep VGA"}
	}

	out, err := exec.CommandContext(ctx, command[0], command[1:]...).Output()
	if err != nil {
		return report.Field{}, zyerrors.Wrap(zyerrors.ErrCodeCommandFailed, fmt.Sprintf("probe %q failed", strings.Join(command, " ")), err)
	}

	slog.Debug("gpu probe output", slog.String("output", strings.TrimSpace(string(out))))

	return report.Field{Name: FieldGPU, Label: "GPU", Value: NotImplemented, NotImplemented: true}, nil
}
