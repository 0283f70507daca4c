package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SessionsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "controle_pragas_sessions_started_total",
			Help: "Total authoring sessions opened",
		},
		[]string{"kind"},
	)

	DiscountRecomputes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "controle_pragas_discount_recomputes_total",
			Help: "Total discount recomputations, by whether stored discounts changed",
		},
		[]string{"changed"},
	)

	EvaluationsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "controle_pragas_evaluations_submitted_total",
			Help: "Total evaluation submissions",
		},
		[]string{"status", "result"},
	)

	EvaluationDiscountCents = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "controle_pragas_evaluation_discount_cents",
			Help:    "Total discount of submitted evaluations, in cents",
			Buckets: prometheus.ExponentialBuckets(100, 10, 7),
		},
	)

	ExportsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "controle_pragas_exports_generated_total",
			Help: "Total evaluation spreadsheets generated",
		},
	)
)

func Init() {
	prometheus.MustRegister(SessionsStarted)
	prometheus.MustRegister(DiscountRecomputes)
	prometheus.MustRegister(EvaluationsSubmitted)
	prometheus.MustRegister(EvaluationDiscountCents)
	prometheus.MustRegister(ExportsGenerated)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// ObserveRecompute counts one recomputation.
func ObserveRecompute(changed bool) {
	DiscountRecomputes.WithLabelValues(boolLabel(changed)).Inc()
}
