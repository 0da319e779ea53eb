package collector

import (
	"context"
	"fmt"
	"strconv"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
	"github.com/foelkdavid/zyfetch/pkg/report"
	"github.com/foelkdavid/zyfetch/pkg/sysfile"
)

// MemoryCollector reads the total memory from /proc/meminfo.
type MemoryCollector struct {
	// Path overrides the meminfo location. Empty means /proc/meminfo.
	Path string
}

// Collect returns the MemTotal value converted from KiB to GiB. The
// value sits at token index 7 of the MemTotal line because the kernel
// pads the KiB column to a fixed width.
func (c *MemoryCollector) Collect(ctx context.Context) (report.Field, error) {
	if err := ctx.Err(); err != nil {
		return report.Field{}, err
	}

	path := c.Path
	if path == "" {
		path = "/proc/meminfo"
	}

	line, err := sysfile.ReadLine(path, "MemTotal")
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to read total memory: %w", err)
	}

	token, err := sysfile.Token(line, 7)
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to parse total memory: %w", err)
	}

	kib, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return report.Field{}, zyerrors.Wrap(zyerrors.ErrCodeInvalidFormat, fmt.Sprintf("memory value %q is not a number", token), err)
	}

	gib := kib / (1024 * 1024)

	return report.Field{Name: FieldMemory, Label: "Memory", Value: fmt.Sprintf("%.2f GiB", gib)}, nil
}
