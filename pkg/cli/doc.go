// Package cli implements the command-line interface for the zyfetch tool.
//
// # Overview
//
// zyfetch reports facts about the local host: operating system, hostname,
// kernel, uptime, shell, CPU, memory, and disk usage. A plain invocation
// collects the default field set and prints a short banner-led report to
// standard output. Structured output modes and an HTTP serve mode expose
// the same report to scripts and scrapers.
//
// # Commands
//
// report (also the default action) - Collect and print the report:
//
//	zyfetch
//	zyfetch report --fields cpu,mem*
//	zyfetch report --format json --output report.json
//	zyfetch report --gpu --probe-timeout 2s
//
// Collects each field by reading its well-known source (/etc/os-release,
// /proc files, the SHELL environment variable, filesystem statistics) and
// prints one "Label: value" line per field. Collection is strictly
// sequential and fail-fast: the first failing field aborts the run and
// nothing is printed.
//
// serve - Expose the report over HTTP:
//
//	zyfetch serve
//	zyfetch serve --port 9090
//
// Starts an HTTP server with the report at /v1/report (?fields= selects
// fields), a service descriptor at /, liveness and readiness probes, and
// a Prometheus registry at /metrics. The GPU probe is never run for HTTP
// requests. Shuts down gracefully on SIGINT/SIGTERM.
//
// version - Print build information:
//
//	zyfetch version
//	zyfetch version --format json
//
// # Global Flags
//
//	--output, -o     Output file path (default: stdout)
//	--format, -t     Output format: text, json, yaml, table (default: text)
//	--fields         Comma-separated field names, * wildcards allowed
//	--gpu            Run the GPU probe (reported value stays a placeholder)
//	--probe-timeout  Bound the GPU probe runtime (default: no timeout)
//	--debug          Enable debug logging
//	--log-json       Output logs in JSON format
//	--help, -h       Show command help
//
// # Output Formats
//
// Text (default) is the classic fetch layout: a banner, a separator, then
// one "Label: value" line per field. JSON and YAML render the report as a
// typed document with kind, apiVersion, metadata (version, report ID,
// collection timestamp) and the ordered field list. Table is a flattened
// two-column FIELD/VALUE view. When --output names a file and --format is
// not given, the format is inferred from the file extension.
//
// # Field Selection
//
// --fields narrows collection to matching fields, keeping canonical print
// order. Wildcards match name segments, so "mem*" selects memory and "*l"
// selects kernel and shell. Selectable names are the nine default fields
// plus the resolution, wm, terminal, and gpu placeholders. Unknown names
// fail with a suggestion when a close match exists.
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//	PORT       Listen port for serve mode (flag takes precedence)
//	SHELL      Read as the reported shell value
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, collection failure)
//	2  Context canceled or timeout
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/collector - Per-field collection from files, env, and probes
//   - pkg/reporter - Collection orchestration and the HTTP report handler
//   - pkg/report - The report document and its selection rules
//   - pkg/serializer - Output formatting and destinations
//   - pkg/server - The serve-mode HTTP server
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/foelkdavid/zyfetch/pkg/version.Version=1.0.0'"
package cli
