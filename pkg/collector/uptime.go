package collector

import (
	"context"
	"fmt"
	"strconv"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
	"github.com/foelkdavid/zyfetch/pkg/report"
	"github.com/foelkdavid/zyfetch/pkg/sysfile"
)

// UptimeCollector reads the system uptime from /proc/uptime.
type UptimeCollector struct {
	// Path overrides the uptime file location. Empty means /proc/uptime.
	Path string
}

// Collect parses the first token of the uptime line as seconds and
// formats it as days, hours, minutes and seconds.
func (c *UptimeCollector) Collect(ctx context.Context) (report.Field, error) {
	if err := ctx.Err(); err != nil {
		return report.Field{}, err
	}

	path := c.Path
	if path == "" {
		path = "/proc/uptime"
	}

	line, err := sysfile.ReadLine(path, "")
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to read uptime: %w", err)
	}

	token, err := sysfile.Token(line, 0)
	if err != nil {
		return report.Field{}, fmt.Errorf("failed to parse uptime: %w", err)
	}

	seconds, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return report.Field{}, zyerrors.Wrap(zyerrors.ErrCodeInvalidFormat, fmt.Sprintf("uptime value %q is not a number", token), err)
	}

	return report.Field{Name: FieldUptime, Label: "Uptime", Value: formatUptime(seconds)}, nil
}

// formatUptime decomposes a seconds count into 86400/3600/60-second
// buckets. Days, hours and minutes truncate toward zero, the leftover
// seconds are rendered without decimal places.
func formatUptime(total float64) string {
	whole := int64(total)
	days := whole / 86400
	hours := (whole % 86400) / 3600
	minutes := (whole % 3600) / 60
	seconds := total - float64(days*86400+hours*3600+minutes*60)

	return fmt.Sprintf("%d days, %d hours, %d minutes, %.0f seconds", days, hours, minutes, seconds)
}
