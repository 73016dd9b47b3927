package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Metrics holds layout counters on a private registry.
type Metrics struct {
	Registry      *prometheus.Registry
	Mutations     *prometheus.CounterVec
	Rejected      prometheus.Counter
	LoadFallbacks prometheus.Counter
	SaveErrors    prometheus.Counter
}

// NewMetrics creates and registers the counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "widgetdeck",
			Subsystem: "layout",
			Name:      "mutations_total",
			Help:      "Accepted layout replacements by operation.",
		}, []string{"op"}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "widgetdeck",
			Subsystem: "layout",
			Name:      "rejected_total",
			Help:      "Layout replacements refused for invariant violations.",
		}),
		LoadFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "widgetdeck",
			Subsystem: "layout",
			Name:      "load_fallbacks_total",
			Help:      "Startups that fell back to the default layout.",
		}),
		SaveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "widgetdeck",
			Subsystem: "layout",
			Name:      "save_errors_total",
			Help:      "Layout writes the backend failed to persist.",
		}),
	}
	m.Registry.MustRegister(m.Mutations, m.Rejected, m.LoadFallbacks, m.SaveErrors)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, log zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", addr).Msg("metrics listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
