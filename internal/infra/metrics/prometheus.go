// Package metrics exports pipeline counters to Prometheus.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "guardian"

// Pipeline implements service.PipelineMetrics on its own registry.
type Pipeline struct {
	registry *prometheus.Registry

	received   prometheus.Counter
	suppressed prometheus.Counter
	escalated  prometheus.Counter
	dispatched *prometheus.HistogramVec
	deliveries *prometheus.CounterVec
	tokens     *prometheus.CounterVec
}

var _ service.PipelineMetrics = (*Pipeline)(nil)

func New() *Pipeline {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Pipeline{
		registry: reg,
		received: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_received_total",
			Help:      "Alert inserts received from the change feed.",
		}),
		suppressed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_suppressed_total",
			Help:      "Alerts dropped by the debounce window.",
		}),
		escalated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_escalated_total",
			Help:      "Critical alerts handed to the escalation sink.",
		}),
		dispatched: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "alert_dispatch_seconds",
			Help:      "Time from receipt to delivery completion.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"priority"}),
		deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Delivery attempts by path, status and implementation.",
		}, []string{"path", "status", "via"}),
		tokens: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_tokens_total",
			Help:      "Push tokens addressed by result.",
		}, []string{"result"}),
	}
}

func (p *Pipeline) AlertReceived() {
	p.received.Inc()
}

func (p *Pipeline) AlertSuppressed() {
	p.suppressed.Inc()
}

func (p *Pipeline) AlertEscalated() {
	p.escalated.Inc()
}

func (p *Pipeline) AlertDispatched(priority entity.PriorityClass, elapsed time.Duration) {
	p.dispatched.WithLabelValues(string(priority)).Observe(elapsed.Seconds())
}

func (p *Pipeline) DeliveryOutcome(path string, outcome entity.PathOutcome) {
	via := outcome.Via
	if via == "" {
		via = entity.ViaNone
	}
	p.deliveries.WithLabelValues(path, string(outcome.Status), via).Inc()

	if outcome.Sent > 0 {
		p.tokens.WithLabelValues("sent").Add(float64(outcome.Sent))
	}
	if outcome.Failed > 0 {
		p.tokens.WithLabelValues("failed").Add(float64(outcome.Failed))
	}
	if n := len(outcome.InvalidTokens); n > 0 {
		p.tokens.WithLabelValues("invalid").Add(float64(n))
	}
}

// WatchDB exports connection pool statistics of db.
func (p *Pipeline) WatchDB(db *sql.DB, dbName string) error {
	return p.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// Handler serves the registry in the Prometheus text format.
func (p *Pipeline) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
