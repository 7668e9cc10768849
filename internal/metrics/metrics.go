package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mbaconnect_match_requests_total",
			Help: "Match requests by matcher backend and outcome code",
		},
		[]string{"provider", "code"},
	)

	MatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mbaconnect_match_duration_seconds",
			Help:    "Duration of the remote matching call in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60, 120},
		},
		[]string{"provider"},
	)

	MatchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mbaconnect_match_results",
			Help:    "Number of match records returned by successful requests",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)

	MatchesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mbaconnect_matches_in_flight",
			Help: "Match requests currently awaiting a response",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mbaconnect_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
)

var sessionGaugeOnce sync.Once

// RegisterSessionGauge exposes the live session count. Only the first call registers.
func RegisterSessionGauge(count func() int) {
	sessionGaugeOnce.Do(func() {
		promauto.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "mbaconnect_sessions",
				Help: "Sessions held in memory",
			},
			func() float64 { return float64(count()) },
		)
	})
}

// MatchObserver records match request metrics for one matcher backend.
type MatchObserver struct {
	Provider string
}

func (o MatchObserver) MatchStarted() {
	MatchesInFlight.Inc()
}

func (o MatchObserver) MatchFinished(code string, results int, elapsed time.Duration) {
	MatchesInFlight.Dec()
	MatchRequests.WithLabelValues(o.Provider, code).Inc()
	MatchDuration.WithLabelValues(o.Provider).Observe(elapsed.Seconds())
	if code == "OK" {
		MatchResults.Observe(float64(results))
	}
}
