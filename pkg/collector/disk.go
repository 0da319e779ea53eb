package collector

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
	"github.com/foelkdavid/zyfetch/pkg/report"
)

const bytesPerGiB = 1 << 30

// DiskCollector reports usage of the filesystem holding a mount point.
type DiskCollector struct {
	// Path is the mount point to measure. Empty means /.
	Path string

	// Statfs overrides the filesystem statistics call for testing.
	// Nil means unix.Statfs.
	Statfs func(path string, buf *unix.Statfs_t) error
}

// Collect computes used and total space from fragment-size block counts
// and renders them in GiB with a rounded-down usage percentage.
func (c *DiskCollector) Collect(ctx context.Context) (report.Field, error) {
	if err := ctx.Err(); err != nil {
		return report.Field{}, err
	}

	path := c.Path
	if path == "" {
		path = "/"
	}

	statfs := c.Statfs
	if statfs == nil {
		statfs = unix.Statfs
	}

	var st unix.Statfs_t
	if err := statfs(path, &st); err != nil {
		return report.Field{}, zyerrors.Wrap(zyerrors.ErrCodeStatfsFailed, "failed to stat filesystem at "+path, err)
	}

	frsize := uint64(st.Frsize)
	total := frsize * st.Blocks
	if total == 0 {
		return report.Field{}, zyerrors.Newf(zyerrors.ErrCodeStatfsFailed, "filesystem at %s reports zero size", path)
	}

	free := frsize * st.Bfree
	used := total - free
	percent := used * 100 / total

	value := fmt.Sprintf("(%s): %.2f GiB / %.2f GiB (%d%%)",
		path,
		float64(used)/bytesPerGiB,
		float64(total)/bytesPerGiB,
		percent,
	)

	return report.Field{Name: FieldDisk, Label: "Disk", Value: value}, nil
}
