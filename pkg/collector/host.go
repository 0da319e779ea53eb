package collector

import (
	"context"
	"fmt"

	"github.com/foelkdavid/zyfetch/pkg/report"
	"github.com/foelkdavid/zyfetch/pkg/sysfile"
)

// HostCollector reads the machine hostname from the hostname file.
type HostCollector struct {
	// Path overrides the hostname file location. Empty means /etc/hostname.
	Path string
}

// Collect returns the first line of the hostname file unmodified.
func (c *HostCollector) Collect(ctx context.Context) (report.Field, error) {
	if err := ctx.Err(); err != nil {
		return report.Field{}, err
	}

	path := c.Path
	if path == "" {
		path = "/etc/hostname"
	}

	line, err := sysfile.ReadLine(path, "")
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to read hostname: %w", err)
	}

	return report.Field{Name: FieldHost, Label: "Host", Value: line}, nil
}
