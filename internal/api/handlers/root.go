package handlers

import (
	"net/http"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "iss-tracker",
		"description": "ISS trajectory lookups over NASA's public ephemeris feed",
		"version":     "1.0.0",
		"endpoints": map[string]string{
			"GET /":                        "API information",
			"GET /health":                  "Health check",
			"GET /metrics":                 "Prometheus metrics",
			"GET /header":                  "Feed header",
			"GET /metadata":                "Feed metadata",
			"GET /comment":                 "Feed comments",
			"GET /epochs":                  "State vectors (limit, offset)",
			"GET /epochs/{epoch}":          "State vector at an epoch",
			"GET /epochs/{epoch}/speed":    "Speed at an epoch",
			"GET /epochs/{epoch}/location": "Geographic position at an epoch",
			"GET /now":                     "Position and speed closest to now",
			"GET /speed/average":           "Mean speed across the feed",
		},
	})
}

func (h *RootHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":   "Route not found",
		"message": "Check the root endpoint (/) for available routes",
	})
}
