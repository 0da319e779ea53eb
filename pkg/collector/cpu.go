package collector

import (
	"context"
	"fmt"

	"github.com/foelkdavid/zyfetch/pkg/report"
	"github.com/foelkdavid/zyfetch/pkg/sysfile"
)

// CPUCollector reads the processor model from /proc/cpuinfo.
type CPUCollector struct {
	// Path overrides the cpuinfo location. Empty means /proc/cpuinfo.
	Path string
}

// Collect returns the model of the first processor entry. The value
// starts at token index 2 because "model name\t:" tokenizes into two
// parts before the model itself.
func (c *CPUCollector) Collect(ctx context.Context) (report.Field, error) {
	if err := ctx.Err(); err != nil {
		return report.Field{}, err
	}

	path := c.Path
	if path == "" {
		path = "/proc/cpuinfo"
	}

	line, err := sysfile.ReadLine(path, "model name")
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to read cpu model: %w", err)
	}

	model, err := sysfile.TokenAndRest(line, 2)
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to parse cpu model: %w", err)
	}

	return report.Field{Name: FieldCPU, Label: "CPU", Value: model}, nil
}
