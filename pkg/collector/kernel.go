package collector

import (
	"context"
	"fmt"

	"github.com/foelkdavid/zyfetch/pkg/report"
	"github.com/foelkdavid/zyfetch/pkg/sysfile"
)

// KernelCollector reads the running kernel release from /proc/version.
type KernelCollector struct {
	// Path overrides the version file location. Empty means /proc/version.
	Path string
}

// Collect returns the third token of the version line, which is the
// kernel release in the "Linux version <release> ..." format.
func (c *KernelCollector) Collect(ctx context.Context) (report.Field, error) {
	if err := ctx.Err(); err != nil {
		return report.Field{}, err
	}

	path := c.Path
	if path == "" {
		path = "/proc/version"
	}

	line, err := sysfile.ReadLine(path, "")
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to read kernel version: %w", err)
	}

	release, err := sysfile.Token(line, 2)
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to parse kernel version: %w", err)
	}

	return report.Field{Name: FieldKernel, Label: "Kernel", Value: release}, nil
}
