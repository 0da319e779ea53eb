package collector

import (
	"context"

	"github.com/foelkdavid/zyfetch/pkg/report"
)

// StaticCollector reports a fixed placeholder for fields that are part
// of the report schema but have no probe implemented yet.
type StaticCollector struct {
	FieldName  string
	FieldLabel string
}

// Collect returns the placeholder value.
func (c *StaticCollector) Collect(ctx context.Context) (report.Field, error) {
	if err := ctx.Err(); err != nil {
		return report.Field{}, err
	}

	return report.Field{
		Name:           c.FieldName,
		Label:          c.FieldLabel,
		Value:          NotImplemented,
		NotImplemented: true,
	}, nil
}
