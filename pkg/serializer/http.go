package serializer

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON writes v as a JSON response body with the given status.
// Encoding happens up front so an encoding failure can still produce a
// clean 500 instead of a half-written 200.
func RespondJSON(w http.ResponseWriter, statusCode int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	body = append(body, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		slog.Warn("failed to write response", slog.String("error", err.Error()))
	}
}
