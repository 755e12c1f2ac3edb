// Package metrics holds the Prometheus counters for layout reads and writes,
// fallbacks to built-in defaults, schema saves and skipped renders. Every
// method is safe on a nil *Metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	inframetrics "github.com/punnatorn6420/Nokair-Platform/infrastructure/metrics"
)

// Label values.
const (
	SourceDatabase = "database"
	SourceCache    = "cache"

	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultError   = "error"

	ReasonUnconfigured = "unconfigured"
	ReasonFetchFailed  = "fetch_failed"
	ReasonNotFound     = "not_found"
	ReasonMalformed    = "malformed"
)

// Metrics holds the domain counters.
type Metrics struct {
	LayoutReads   *prometheus.CounterVec
	LayoutWrites  *prometheus.CounterVec
	Fallbacks     *prometheus.CounterVec
	SchemaSaves   *prometheus.CounterVec
	RenderSkipped *prometheus.CounterVec
}

// New registers the counters on reg (prometheus.DefaultRegisterer when nil).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		LayoutReads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: inframetrics.Namespace,
			Name:      "layout_reads_total",
			Help:      "Layout documents served, by source",
		}, []string{"source"}),
		LayoutWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: inframetrics.Namespace,
			Name:      "layout_writes_total",
			Help:      "Layout upserts, by result",
		}, []string{"result"}),
		Fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: inframetrics.Namespace,
			Name:      "fallbacks_total",
			Help:      "Times built-in defaults were used instead of stored data",
		}, []string{"reason"}),
		SchemaSaves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: inframetrics.Namespace,
			Name:      "schema_saves_total",
			Help:      "Page schema saves, by final target",
		}, []string{"target"}),
		RenderSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: inframetrics.Namespace,
			Name:      "render_skipped_total",
			Help:      "Components or sections with no renderer",
		}, []string{"type"}),
	}
}

func (m *Metrics) LayoutRead(source string) {
	if m != nil {
		m.LayoutReads.WithLabelValues(source).Inc()
	}
}

func (m *Metrics) LayoutWrite(result string) {
	if m != nil {
		m.LayoutWrites.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) Fallback(reason string) {
	if m != nil {
		m.Fallbacks.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) SchemaSave(target string) {
	if m != nil {
		m.SchemaSaves.WithLabelValues(target).Inc()
	}
}

// RenderSkip matches the render.WithSkipHook signature.
func (m *Metrics) RenderSkip(typ string) {
	if m != nil {
		m.RenderSkipped.WithLabelValues(typ).Inc()
	}
}
