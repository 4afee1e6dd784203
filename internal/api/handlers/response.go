package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/randytsao24/iss-tracker/internal/epoch"
	"github.com/randytsao24/iss-tracker/internal/tracker"
	"github.com/randytsao24/iss-tracker/internal/trajectory"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

// writeError maps a query failure onto a status code and error body
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *tracker.UpstreamError

	switch {
	case errors.Is(err, trajectory.ErrInvalidParameter):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid parameter",
			"message": err.Error(),
		})
	case errors.Is(err, trajectory.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":   "Epoch not found",
			"message": err.Error(),
		})
	case errors.As(err, &upstream):
		slog.ErrorContext(r.Context(), "upstream failure",
			"collaborator", upstream.Collaborator,
			"path", r.URL.Path,
			"error", upstream.Err,
		)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":   "Upstream service failed",
			"message": err.Error(),
		})
	case errors.Is(err, epoch.ErrFormat), errors.Is(err, trajectory.ErrInvalidInput):
		// Only feed data reaches these; request epochs are checked up front.
		slog.ErrorContext(r.Context(), "malformed feed data", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":   "Malformed feed data",
			"message": err.Error(),
		})
	default:
		slog.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}
}
