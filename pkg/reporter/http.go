package reporter

import (
	"net/http"
	"strings"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
	"github.com/foelkdavid/zyfetch/pkg/serializer"
	"github.com/foelkdavid/zyfetch/pkg/server"
)

// SplitFields parses a comma-separated field list into patterns.
// Whitespace around names is dropped, as are empty entries, so
// "os, memory," yields ["os", "memory"].
func SplitFields(s string) []string {
	var fields []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}

// HandleReport handles GET /v1/report. The optional fields query
// parameter selects which fields to collect, with the same patterns
// the CLI accepts. The GPU probe is never run for HTTP requests; a
// selected gpu field is served as its placeholder.
func (r *SystemReporter) HandleReport(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, req, http.StatusMethodNotAllowed, zyerrors.ErrCodeMethodNotAllowed,
			"only GET is supported", false, nil)
		return
	}

	hr := r.forRequest(req)

	rep, err := hr.Collect(req.Context())
	if err != nil {
		server.WriteErrorFromErr(w, req, err, "failed to collect report", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rep)
}

// forRequest derives a per-request reporter from the receiver. The
// field selection comes from the query; everything else is shared.
func (r *SystemReporter) forRequest(req *http.Request) *SystemReporter {
	return &SystemReporter{
		Version: r.Version,
		Factory: r.Factory,
		Fields:  SplitFields(req.URL.Query().Get("fields")),
	}
}
