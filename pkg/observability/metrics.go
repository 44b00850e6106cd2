package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/screenstack/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "screenstack"

// Metrics holds the session collectors.
type Metrics struct {
	ScreenExecutions *prometheus.CounterVec
	InputRejections  *prometheus.CounterVec
	Navigations      *prometheus.CounterVec
	StackDepth       *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg creates a private registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		ScreenExecutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "screen_executions_total",
				Help:      "Total number of prompt screen executions",
			},
			[]string{"screen"},
		),
		InputRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "input_rejections_total",
				Help:      "Total number of inputs rejected by a screen's parser",
			},
			[]string{"screen"},
		),
		Navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "navigations_total",
				Help:      "Total number of push and pop operations",
			},
			[]string{"action"},
		),
		StackDepth: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stack_depth",
				Help:      "Number of screens on a navigation stack after its last change, by stack name",
			},
			// Stacks sharing a name (or untitled, unnamed stacks) share a series.
			[]string{"stack"},
		),
	}
	for _, c := range []prometheus.Collector{m.ScreenExecutions, m.InputRejections, m.Navigations, m.StackDepth} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnScreenEnter: func(_ context.Context, e *domain.ScreenEvent) {
			m.ScreenExecutions.WithLabelValues(e.Screen).Inc()
		},
		OnInputRejected: func(_ context.Context, e *domain.ScreenEvent) {
			m.InputRejections.WithLabelValues(e.Screen).Inc()
		},
		OnNavigate: func(_ context.Context, e *domain.NavigationEvent) {
			m.Navigations.WithLabelValues(string(e.Type)).Inc()
			m.StackDepth.WithLabelValues(e.Stack).Set(float64(e.Depth))
		},
	}
}

// Router serves the gatherer's metrics on /metrics and a liveness probe on /healthz.
func Router(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}
