package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lukemay/blankparty/internal/middleware"
	"github.com/lukemay/blankparty/internal/monitor"
	"github.com/lukemay/blankparty/internal/services/room"
	"github.com/lukemay/blankparty/internal/transport/ws"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Gateway  *ws.Gateway
	Registry *room.Registry
	Metrics  *monitor.Metrics
}

// NewRouter creates a new router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	recoveryMiddleware := middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler)
	loggingMiddleware := middleware.Logging(cfg.Logger)

	r.Use(recoveryMiddleware)

	// The game socket. Logging middleware is skipped here: a single
	// request line for a connection that lives for a whole game is
	// noise, and the gateway logs its own lifecycle.
	r.HandleFunc("/ws", cfg.Gateway.Handle)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(loggingMiddleware)
	api.HandleFunc("/health", healthHandler(cfg.Registry)).Methods(http.MethodGet)

	// Refresh the room gauge on scrape so it tracks storage, not a
	// counter that can drift
	r.Handle("/metrics", metricsHandler(cfg.Metrics, cfg.Registry)).Methods(http.MethodGet)

	return r
}

func healthHandler(registry *room.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := registry.CountRooms(r.Context())
		if err != nil {
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"rooms":  rooms,
		})
	}
}

func metricsHandler(metrics *monitor.Metrics, registry *room.Registry) http.Handler {
	scrape := metrics.Handler()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rooms, err := registry.CountRooms(r.Context()); err == nil {
			metrics.SetActiveRooms(rooms)
		}
		scrape.ServeHTTP(w, r)
	})
}
