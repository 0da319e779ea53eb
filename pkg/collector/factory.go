package collector

import "time"

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateOSCollector() Collector
	CreateHostCollector() Collector
	CreateKernelCollector() Collector
	CreateUptimeCollector() Collector
	CreatePackagesCollector() Collector
	CreateShellCollector() Collector
	CreateCPUCollector() Collector
	CreateMemoryCollector() Collector
	CreateDiskCollector() Collector
	CreateResolutionCollector() Collector
	CreateWMCollector() Collector
	CreateTerminalCollector() Collector
	CreateGPUCollector() Collector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	DiskPath        string
	GPUCommand      []string
	GPUProbeTimeout time.Duration
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{
		DiskPath:   "/",
		GPUCommand: []string{"sh", "-c", "lspci | grep VGA"},
	}
}

// CreateOSCollector creates an os-release collector.
func (f *DefaultFactory) CreateOSCollector() Collector {
	return &OSCollector{}
}

// CreateHostCollector creates a hostname collector.
func (f *DefaultFactory) CreateHostCollector() Collector {
	return &HostCollector{}
}

// CreateKernelCollector creates a kernel version collector.
func (f *DefaultFactory) CreateKernelCollector() Collector {
	return &KernelCollector{}
}

// CreateUptimeCollector creates an uptime collector.
func (f *DefaultFactory) CreateUptimeCollector() Collector {
	return &UptimeCollector{}
}

// CreatePackagesCollector creates a package count placeholder collector.
func (f *DefaultFactory) CreatePackagesCollector() Collector {
	return &StaticCollector{FieldName: FieldPackages, FieldLabel: "Packages"}
}

// CreateShellCollector creates a login shell collector.
func (f *DefaultFactory) CreateShellCollector() Collector {
	return &ShellCollector{}
}

// CreateCPUCollector creates a cpu model collector.
func (f *DefaultFactory) CreateCPUCollector() Collector {
	return &CPUCollector{}
}

// CreateMemoryCollector creates a total memory collector.
func (f *DefaultFactory) CreateMemoryCollector() Collector {
	return &MemoryCollector{}
}

// CreateDiskCollector creates a disk usage collector.
func (f *DefaultFactory) CreateDiskCollector() Collector {
	return &DiskCollector{Path: f.DiskPath}
}

// CreateResolutionCollector creates a display resolution placeholder collector.
func (f *DefaultFactory) CreateResolutionCollector() Collector {
	return &StaticCollector{FieldName: FieldResolution, FieldLabel: "Resolution"}
}

// CreateWMCollector creates a window manager placeholder collector.
func (f *DefaultFactory) CreateWMCollector() Collector {
	return &StaticCollector{FieldName: FieldWM, FieldLabel: "WM"}
}

// CreateTerminalCollector creates a terminal placeholder collector.
func (f *DefaultFactory) CreateTerminalCollector() Collector {
	return &StaticCollector{FieldName: FieldTerminal, FieldLabel: "Terminal"}
}

// CreateGPUCollector creates a VGA probe collector.
func (f *DefaultFactory) CreateGPUCollector() Collector {
	return &GPUCollector{Command: f.GPUCommand, Timeout: f.GPUProbeTimeout}
}
