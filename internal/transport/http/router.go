package httptransport

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"creditrisk/pkg/platform/httputil"
	"creditrisk/pkg/platform/middleware/metadata"
	"creditrisk/pkg/platform/middleware/requesttime"
)

const readinessTimeout = 2 * time.Second

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// ReadinessCheck reports whether a dependency is usable. A non-nil error marks
// the process as not ready.
type ReadinessCheck func(ctx context.Context) error

// Deps are the pieces the router is assembled from.
type Deps struct {
	Modules  []Registrar
	Gatherer prometheus.Gatherer
	// Checks are keyed by the name reported in the /readyz body.
	Checks map[string]ReadinessCheck
}

// NewRouter wires all public endpoints behind the request-scoped middleware.
// /healthz answers as long as the process serves HTTP; /readyz runs every
// readiness check.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(metadata.RequestID)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", readyz(deps.Checks))

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	for _, m := range deps.Modules {
		m.Register(r)
	}
	return r
}

func readyz(checks map[string]ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		status := http.StatusOK
		body := map[string]string{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				body[name] = "unavailable"
				continue
			}
			body[name] = "ok"
		}
		httputil.WriteJSON(w, status, body)
	}
}
