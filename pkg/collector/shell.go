package collector

import (
	"context"
	"os"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
	"github.com/foelkdavid/zyfetch/pkg/report"
)

// ShellCollector reads the login shell from the SHELL environment
// variable.
type ShellCollector struct {
	// LookupEnv overrides environment lookup for testing. Nil means
	// os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// Collect returns the raw SHELL value. An unset variable is an error,
// there is no fallback shell.
func (c *ShellCollector) Collect(ctx context.Context) (report.Field, error) {
	if err := ctx.Err(); err != nil {
		return report.Field{}, err
	}

	lookup := c.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	shell, ok := lookup("SHELL")
	if !ok {
		return report.Field{}, zyerrors.New(zyerrors.ErrCodeShellNotFound, "SHELL is not set")
	}

	return report.Field{Name: FieldShell, Label: "Shell", Value: shell}, nil
}
