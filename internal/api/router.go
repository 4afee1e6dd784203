package api

import (
	"net/http"

	"github.com/randytsao24/iss-tracker/internal/api/handlers"
	"github.com/randytsao24/iss-tracker/internal/config"
	"github.com/randytsao24/iss-tracker/internal/observability"
)

// NewRouter creates and configures the HTTP router with all routes and middleware
func NewRouter(
	cfg *config.Config,
	tracker handlers.Tracker,
	metrics *observability.Collector,
) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	rootHandler := handlers.NewRootHandler()
	epochHandler := handlers.NewEpochHandler(tracker)

	// Core routes
	mux.HandleFunc("GET /{$}", rootHandler.Index)
	mux.HandleFunc("GET /api", rootHandler.Index)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("/", rootHandler.NotFound)

	// Feed sections
	mux.HandleFunc("GET /header", epochHandler.GetHeader)
	mux.HandleFunc("GET /metadata", epochHandler.GetMetadata)
	mux.HandleFunc("GET /comment", epochHandler.GetComments)

	// Epoch routes
	mux.HandleFunc("GET /epochs", epochHandler.ListEpochs)
	mux.HandleFunc("GET /epochs/{epoch}", epochHandler.GetEpoch)
	mux.HandleFunc("GET /epochs/{epoch}/speed", epochHandler.GetEpochSpeed)
	mux.HandleFunc("GET /epochs/{epoch}/location", epochHandler.GetEpochLocation)

	// Derived views
	mux.HandleFunc("GET /now", epochHandler.GetNow)
	mux.HandleFunc("GET /speed/average", epochHandler.GetAverageSpeed)

	// Apply middleware stack
	handler := Chain(mux,
		Recovery,
		Logging,
		Metrics(metrics, mux),
		CORS,
		Timeout(cfg.RequestTimeout),
	)

	return handler
}
