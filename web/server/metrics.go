package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rigidsim/raycast/pkg/raycast"
)

const resultLabel = "result"

var (
	castQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "raycast_queries_total",
		Help: "The number of ray cast queries served.",
	}, []string{
		resultLabel,
	})

	castDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "raycast_query_duration_seconds",
		Help:    "The time spent answering a single ray cast query.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
	})

	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "raycast_batch_duration_seconds",
		Help:    "The time spent answering a batched ray cast query.",
		Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
	})

	batchRays = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "raycast_batch_rays",
		Help:    "The number of rays per batched query.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)

func observeCast(d time.Duration, hit raycast.Hit, err error) {
	switch {
	case err != nil:
		castQueries.With(prometheus.Labels{resultLabel: "error"}).Inc()
	case hit.GeomID < 0:
		castQueries.With(prometheus.Labels{resultLabel: "miss"}).Inc()
	default:
		castQueries.With(prometheus.Labels{resultLabel: "hit"}).Inc()
	}

	if d > 0 {
		castDuration.Observe(d.Seconds())
	}
}

func observeBatch(d time.Duration, rays int) {
	batchDuration.Observe(d.Seconds())
	batchRays.Observe(float64(rays))
}
