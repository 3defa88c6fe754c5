package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

// Pipeline collects batch-run metrics: per-stage durations, record drop
// accounting and scoring anomalies.
type Pipeline struct {
	registry *prometheus.Registry

	stageDuration    *prometheus.HistogramVec
	recordsIngested  prometheus.Counter
	recordsDropped   *prometheus.CounterVec
	ratingsImputed   prometheus.Counter
	scoringAnomalies *prometheus.CounterVec
	scrapedReviews   *prometheus.CounterVec
}

func NewPipeline() *Pipeline {
	registry := prometheus.NewRegistry()

	stageDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fra",
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Stage duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"stage"},
	)
	recordsIngested := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fra",
			Subsystem: "pipeline",
			Name:      "records_ingested_total",
			Help:      "Raw records entering the cleaning stage.",
		},
	)
	recordsDropped := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fra",
			Subsystem: "pipeline",
			Name:      "records_dropped_total",
			Help:      "Records dropped during cleaning by reason.",
		},
		[]string{"reason"},
	)
	ratingsImputed := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fra",
			Subsystem: "pipeline",
			Name:      "ratings_imputed_total",
			Help:      "Missing ratings filled with the batch median.",
		},
	)
	scoringAnomalies := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fra",
			Subsystem: "pipeline",
			Name:      "scoring_anomalies_total",
			Help:      "Out-of-range engine scores clamped, by field.",
		},
		[]string{"field"},
	)
	scrapedReviews := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fra",
			Subsystem: "scraper",
			Name:      "reviews_fetched_total",
			Help:      "Reviews fetched from the store by app.",
		},
		[]string{"app"},
	)

	registry.MustRegister(stageDuration, recordsIngested, recordsDropped, ratingsImputed, scoringAnomalies, scrapedReviews)

	return &Pipeline{
		registry:         registry,
		stageDuration:    stageDuration,
		recordsIngested:  recordsIngested,
		recordsDropped:   recordsDropped,
		ratingsImputed:   ratingsImputed,
		scoringAnomalies: scoringAnomalies,
		scrapedReviews:   scrapedReviews,
	}
}

func (m *Pipeline) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Pipeline) ObserveStage(stage string, duration time.Duration) {
	m.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

func (m *Pipeline) RecordQuality(q domain.QualityReport) {
	m.recordsIngested.Add(float64(q.Initial))
	m.recordsDropped.WithLabelValues("empty_text").Add(float64(q.DroppedEmptyText))
	m.recordsDropped.WithLabelValues("bad_date").Add(float64(q.DroppedBadDate))
	m.recordsDropped.WithLabelValues("bad_rating").Add(float64(q.DroppedBadRating))
	m.recordsDropped.WithLabelValues("duplicate").Add(float64(q.DroppedDuplicates))
	m.ratingsImputed.Add(float64(q.ImputedRatings))
}

func (m *Pipeline) ScoringAnomaly(field string) {
	m.scoringAnomalies.WithLabelValues(field).Inc()
}

func (m *Pipeline) ReviewsFetched(app string, n int) {
	m.scrapedReviews.WithLabelValues(app).Add(float64(n))
}
