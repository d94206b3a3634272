package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SimulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "whatif_simulations_total",
		Help: "Simulation runs executed, by attribution model.",
	}, []string{"model"})

	InvalidInputTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "whatif_invalid_input_total",
		Help: "Simulation requests rejected for invalid input.",
	})

	SimulationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "whatif_simulation_seconds",
		Help:    "Wall time of one full simulation pipeline run.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
	})

	RunCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "whatif_run_cache_hits_total",
		Help: "Simulation requests served from the run cache.",
	})
)
