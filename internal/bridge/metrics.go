package bridge

import "github.com/prometheus/client_golang/prometheus"

var (
	loadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flyfund",
			Subsystem: "bridge",
			Name:      "loads_total",
			Help:      "Total model load attempts",
		},
		[]string{"outcome"},
	)

	unloadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flyfund",
			Subsystem: "bridge",
			Name:      "unloads_total",
			Help:      "Total model unloads",
		},
	)

	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flyfund",
			Subsystem: "bridge",
			Name:      "generations_total",
			Help:      "Total generation calls",
		},
		[]string{"outcome"},
	)

	tokensTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "flyfund",
			Subsystem: "bridge",
			Name:      "tokens_total",
			Help:      "Total tokens delivered to sinks",
		},
	)

	generateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "flyfund",
			Subsystem: "bridge",
			Name:      "generate_duration_seconds",
			Help:      "Duration of Generate calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)
)

func init() {
	prometheus.MustRegister(loadsTotal, unloadsTotal, generationsTotal, tokensTotal, generateDuration)
}
