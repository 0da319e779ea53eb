package reporter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Report collection metrics
	reportCollectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "zyfetch_report_collection_duration_seconds",
			Help:    "Time taken to collect a complete report",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	reportCollectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zyfetch_report_collection_total",
			Help: "Total number of report collection attempts",
		},
		[]string{"status"}, // success or error
	)

	reportCollectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zyfetch_report_collector_duration_seconds",
			Help:    "Time taken by individual field collectors",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"collector"}, // os, host, kernel, uptime, packages, shell, cpu, memory, disk, resolution, wm, terminal, gpu
	)

	reportFieldCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "zyfetch_report_fields",
			Help: "Number of fields in the last collected report",
		},
	)
)
