package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewMatchCandidatesFilteredTotal returns a Prometheus counter for vehicle offers dropped by eligibility filtering
func NewMatchCandidatesFilteredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "match_candidates_filtered_total",
		Help: "Total number of vehicle offers dropped by eligibility filtering during match queries",
	})
}

// NewOffersExpiredTotal returns a Prometheus counter for vehicle offers moved to EXPIRED by the worker
func NewOffersExpiredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offers_expired_total",
		Help: "Total number of vehicle offers expired by the background worker",
	})
}

// NewRatingEventsConsumedTotal returns a Prometheus counter for consumed rating events
func NewRatingEventsConsumedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rating_events_consumed_total",
		Help: "Total number of rating events consumed from Kafka",
	})
}
