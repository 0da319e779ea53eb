package server

import (
	"net/http"
	"time"

	zyerrors "github.com/foelkdavid/zyfetch/pkg/errors"
	"github.com/foelkdavid/zyfetch/pkg/serializer"
)

// HealthResponse is the body served by the liveness and readiness probes.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func probeMethodNotAllowed(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return false
	}
	w.Header().Set("Allow", http.MethodGet)
	WriteError(w, r, http.StatusMethodNotAllowed, zyerrors.ErrCodeMethodNotAllowed,
		"only GET is supported", false, nil)
	return true
}

// handleHealth reports liveness. A process that can answer at all is
// healthy; collection problems surface per request, not here.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if probeMethodNotAllowed(w, r) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// handleReady reports readiness. The flag flips on once the listener is
// up and off again while shutdown drains in-flight requests.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if probeMethodNotAllowed(w, r) {
		return
	}

	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()

	resp := HealthResponse{Status: "ready", Timestamp: time.Now()}
	status := http.StatusOK
	if !ready {
		resp.Status = "not_ready"
		resp.Reason = "server is starting or draining"
		status = http.StatusServiceUnavailable
	}

	serializer.RespondJSON(w, status, resp)
}
