// Package localapi serves a read-only debug surface for the running
// client: the current repository snapshot, health, and metrics. It never
// mutates the store.
package localapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/parlor-chat/parlor/shared/logger"
	mwmetrics "github.com/parlor-chat/parlor/shared/middleware/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/parlor-chat/parlor/shared/domain"
)

// Snapshotter is the read-only slice of the store the local API needs.
type Snapshotter interface {
	Snapshot() []domain.Message
}

func NewRouter(st Snapshotter) chi.Router {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}))
	r.Use(mwmetrics.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/v1/messages", func(w http.ResponseWriter, _ *http.Request) {
		snap := st.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			logger.Log.Error("failed to encode snapshot", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
