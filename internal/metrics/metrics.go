// Package metrics registers the Prometheus collectors klotskid exposes on
// its /metrics endpoint, the way cmd/katie-server/metrics.go registers
// counters and a summary for its own request path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// SolveRequests counts solve requests, partitioned by outcome: solved,
	// unsolved, or error.
	SolveRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "klotski_solve_requests_total",
		Help: "Total number of /v1/solve requests, by outcome.",
	}, []string{"outcome"})

	// CacheLookups counts solve-cache lookups, by hit or miss.
	CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "klotski_cache_lookups_total",
		Help: "Total number of solve-cache lookups, by result.",
	}, []string{"result"})

	// StatesExplored summarizes how many states the BFS visited per solve.
	StatesExplored = prometheus.NewSummary(prometheus.SummaryOpts{
		Name:       "klotski_states_explored",
		Help:       "Number of states explored per solve, a proxy for search cost.",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	})

	// SearchDuration summarizes wall-clock solve time in seconds.
	SearchDuration = prometheus.NewSummary(prometheus.SummaryOpts{
		Name:       "klotski_search_duration_seconds",
		Help:       "Wall-clock time spent in search.Run per solve.",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	})

	// InFlight gauges the number of solves currently executing.
	InFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "klotski_solves_in_flight",
		Help: "Number of /v1/solve requests currently being processed.",
	})
)

// Register adds all of klotskid's collectors to the default registerer. It
// must be called once, before the metrics server starts serving /metrics.
func Register() {
	prometheus.MustRegister(SolveRequests, CacheLookups, StatesExplored, SearchDuration, InFlight)
}
