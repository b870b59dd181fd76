package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	PredictionsTotal *prometheus.CounterVec
	ErrorsTotal      *prometheus.CounterVec
	CacheHitsTotal   prometheus.Counter
	PredictDuration  prometheus.Histogram
}

func NewMetrics() *Metrics {
	return &Metrics{
		PredictionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "phishguard_predictions_total",
			Help: "The total number of URL predictions served",
		}, []string{"verdict"}),
		ErrorsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "phishguard_errors_total",
			Help: "The total number of errors encountered",
		}, []string{"type"}), // e.g. 'predict_failed', 'history_save_failed'
		CacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "phishguard_cache_hits_total",
			Help: "The total number of predictions answered from the verdict cache",
		}),
		PredictDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "phishguard_predict_duration_seconds",
			Help:    "Time spent extracting features and running the classifier",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncPredictions(verdict string) {
	m.PredictionsTotal.WithLabelValues(verdict).Inc()
}

func (m *Metrics) IncErrors(errorType string) {
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *Metrics) IncCacheHits() {
	m.CacheHitsTotal.Inc()
}

func (m *Metrics) ObservePredict(d time.Duration) {
	m.PredictDuration.Observe(d.Seconds())
}
