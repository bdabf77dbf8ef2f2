package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the league counters. The zero value is not usable, create it
// with New.
type Metrics struct {
	registry *prometheus.Registry

	LiveViews     *prometheus.CounterVec
	EventsWritten *prometheus.CounterVec
	EventsDeleted prometheus.Counter
	StoreErrors   *prometheus.CounterVec
	Unattributed  prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LiveViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "league",
			Name:      "match_views_total",
			Help:      "Match views served, by match status.",
		}, []string{"status"}),
		EventsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "league",
			Name:      "match_events_written_total",
			Help:      "Live match events stored, by event type.",
		}, []string{"type"}),
		EventsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "league",
			Name:      "match_events_deleted_total",
			Help:      "Live match events deleted.",
		}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "league",
			Name:      "store_errors_total",
			Help:      "Errors returned by the league store, by kind.",
		}, []string{"kind"}),
		Unattributed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "league",
			Name:      "unattributed_scoring_events_total",
			Help:      "Scoring events credited to a team that is not playing the match.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.LiveViews,
		m.EventsWritten,
		m.EventsDeleted,
		m.StoreErrors,
		m.Unattributed,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
