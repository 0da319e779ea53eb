package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/foelkdavid/zyfetch/pkg/collector"
	"github.com/foelkdavid/zyfetch/pkg/report"
	"github.com/foelkdavid/zyfetch/pkg/serializer"
)

// defaultFieldNames lists the fields collected when no selection is
// given, in print order.
var defaultFieldNames = []string{
	collector.FieldOS,
	collector.FieldHost,
	collector.FieldKernel,
	collector.FieldUptime,
	collector.FieldPackages,
	collector.FieldShell,
	collector.FieldCPU,
	collector.FieldMemory,
	collector.FieldDisk,
}

// extraFieldNames lists the placeholder fields that are only collected
// when selected by name or wildcard.
var extraFieldNames = []string{
	collector.FieldResolution,
	collector.FieldWM,
	collector.FieldTerminal,
	collector.FieldGPU,
}

// allFieldNames is every selectable field, in print order.
var allFieldNames = append(append([]string(nil), defaultFieldNames...), extraFieldNames...)

// SystemReporter gathers host information fields from the current machine.
// It runs the selected collectors sequentially in print order, aborts on the
// first failure, and serializes the assembled report.
type SystemReporter struct {
	// Version is the reporter version recorded in report metadata.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is the serializer to use for output. If nil, a default stdout text serializer is used.
	Serializer serializer.Serializer

	// Fields selects fields by name or wildcard pattern. Empty selects the default set.
	Fields []string

	// ProbeGPU runs the VGA hardware probe and includes the gpu field.
	// Without it the gpu field is a plain placeholder even when selected.
	ProbeGPU bool
}

var _ Reporter = (*SystemReporter)(nil)

// fieldSource pairs a field name with the constructor for its collector.
type fieldSource struct {
	name   string
	create func() collector.Collector
}

func (r *SystemReporter) sources() []fieldSource {
	return []fieldSource{
		{collector.FieldOS, r.Factory.CreateOSCollector},
		{collector.FieldHost, r.Factory.CreateHostCollector},
		{collector.FieldKernel, r.Factory.CreateKernelCollector},
		{collector.FieldUptime, r.Factory.CreateUptimeCollector},
		{collector.FieldPackages, r.Factory.CreatePackagesCollector},
		{collector.FieldShell, r.Factory.CreateShellCollector},
		{collector.FieldCPU, r.Factory.CreateCPUCollector},
		{collector.FieldMemory, r.Factory.CreateMemoryCollector},
		{collector.FieldDisk, r.Factory.CreateDiskCollector},
		{collector.FieldResolution, r.Factory.CreateResolutionCollector},
		{collector.FieldWM, r.Factory.CreateWMCollector},
		{collector.FieldTerminal, r.Factory.CreateTerminalCollector},
		{collector.FieldGPU, r.gpuCollector},
	}
}

// gpuCollector returns the probing collector only when the probe was
// requested. The probe is opt-in; selecting the gpu field by pattern
// yields the placeholder without touching the hardware.
func (r *SystemReporter) gpuCollector() collector.Collector {
	if r.ProbeGPU {
		return r.Factory.CreateGPUCollector()
	}
	return &collector.StaticCollector{FieldName: collector.FieldGPU, FieldLabel: "GPU"}
}

// selectedNames resolves the configured field patterns against the
// selectable field names. The returned set decides which sources run;
// ordering always follows the source table.
func (r *SystemReporter) selectedNames() (map[string]bool, error) {
	patterns := r.Fields
	if len(patterns) == 0 {
		patterns = defaultFieldNames
	}

	candidates := make([]report.Field, 0, len(allFieldNames))
	for _, name := range allFieldNames {
		candidates = append(candidates, report.Field{Name: name})
	}

	matched, err := report.Select(candidates, patterns)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]bool, len(matched))
	for _, f := range matched {
		selected[f.Name] = true
	}

	if r.ProbeGPU {
		selected[collector.FieldGPU] = true
	}

	return selected, nil
}

// Collect gathers the selected fields from the current host and returns the
// assembled report. Collectors run one at a time in print order; the first
// failure aborts the run and no partial report is returned.
func (r *SystemReporter) Collect(ctx context.Context) (*report.Report, error) {
	if r.Factory == nil {
		r.Factory = collector.NewDefaultFactory()
	}

	slog.Debug("starting report collection")

	// Track overall collection duration
	start := time.Now()
	defer func() {
		reportCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	selected, err := r.selectedNames()
	if err != nil {
		reportCollectionTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	rep := report.New(
		report.WithMetadata(report.MetadataVersion, r.Version),
		report.WithMetadata(report.MetadataReportID, uuid.NewString()),
		report.WithMetadata(report.MetadataCollectedAt, time.Now().UTC().Format(time.RFC3339)),
	)
	slog.Debug("assembled report metadata",
		slog.String("id", rep.Metadata[report.MetadataReportID]),
		slog.String("version", r.Version),
	)

	for _, src := range r.sources() {
		if !selected[src.name] {
			continue
		}

		slog.Debug("collecting field", slog.String("field", src.name))
		collectorStart := time.Now()
		field, err := src.create().Collect(ctx)
		reportCollectorDuration.WithLabelValues(src.name).Observe(time.Since(collectorStart).Seconds())
		if err != nil {
			reportCollectionTotal.WithLabelValues("error").Inc()
			slog.Error("failed to collect field", slog.String("field", src.name), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to collect %s field: %w", src.name, err)
		}

		rep.Append(field)
	}

	reportCollectionTotal.WithLabelValues("success").Inc()
	reportFieldCount.Set(float64(len(rep.Fields)))

	slog.Debug("report collection complete", slog.Int("fields", len(rep.Fields)))

	return rep, nil
}

// Report collects the selected fields and serializes the result.
func (r *SystemReporter) Report(ctx context.Context) error {
	rep, err := r.Collect(ctx)
	if err != nil {
		return err
	}

	if r.Serializer == nil {
		r.Serializer = serializer.NewStdoutWriter(serializer.FormatText)
	}

	if err := r.Serializer.Serialize(ctx, rep); err != nil {
		slog.Error("failed to serialize report", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	return nil
}
