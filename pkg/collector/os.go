package collector

import (
	"context"
	"fmt"

	"github.com/foelkdavid/zyfetch/pkg/report"
	"github.com/foelkdavid/zyfetch/pkg/sysfile"
)

// OSCollector reads the distribution name from the os-release file.
type OSCollector struct {
	// Path overrides the os-release location. Empty means /etc/os-release.
	Path string
}

// Collect returns the value of the PRETTY_NAME key with its quotes stripped.
func (c *OSCollector) Collect(ctx context.Context) (report.Field, error) {
	if err := ctx.Err(); err != nil {
		return report.Field{}, err
	}

	path := c.Path
	if path == "" {
		path = "/etc/os-release"
	}

	line, err := sysfile.ReadLine(path, "PRETTY_NAME=")
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to read os name: %w", err)
	}

	name, err := sysfile.TrimQuotes(line)
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to parse os name: %w", err)
	}

	return report.Field{Name: FieldOS, Label: "OS", Value: name}, nil
}
