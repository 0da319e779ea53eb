package collector

import (
	"context"

	"github.com/foelkdavid/zyfetch/pkg/report"
)

// Collector defines the interface for collecting a single report field.
// Implementations gather data from various sources including /etc and
// /proc files, environment variables, system calls and subprocesses.
// All collectors must support context-based cancellation.
type Collector interface {
	Collect(ctx context.Context) (report.Field, error)
}

// Field names used by the built-in collectors.
const (
	FieldOS         = "os"
	FieldHost       = "host"
	FieldKernel     = "kernel"
	FieldUptime     = "uptime"
	FieldPackages   = "packages"
	FieldShell      = "shell"
	FieldCPU        = "cpu"
	FieldMemory     = "memory"
	FieldDisk       = "disk"
	FieldResolution = "resolution"
	FieldWM         = "wm"
	FieldTerminal   = "terminal"
	FieldGPU        = "gpu"
)

// NotImplemented is the placeholder value reported for fields that have
// no real probe behind them.
const NotImplemented = "Not Implemented"
