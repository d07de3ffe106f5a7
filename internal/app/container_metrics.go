package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-freight-match/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal       prometheus.Counter `name:"rate_limit_exceeded_total"`
	MatchCandidatesFilteredTotal prometheus.Counter `name:"match_candidates_filtered_total"`
	OffersExpiredTotal           prometheus.Counter `name:"offers_expired_total"`
	RatingEventsConsumedTotal    prometheus.Counter `name:"rating_events_consumed_total"`
}

// provideMetrics registers the service counters on the default registerer.
// A counter that is already registered (container rebuilt in-process) is
// reused instead of failing.
func provideMetrics() (metricsOut, error) {
	rl, err := registerCounter("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, err
	}
	filtered, err := registerCounter("match_candidates_filtered_total", metrics.NewMatchCandidatesFilteredTotal())
	if err != nil {
		return metricsOut{}, err
	}
	expired, err := registerCounter("offers_expired_total", metrics.NewOffersExpiredTotal())
	if err != nil {
		return metricsOut{}, err
	}
	consumed, err := registerCounter("rating_events_consumed_total", metrics.NewRatingEventsConsumedTotal())
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{
		RateLimitExceededTotal:       rl,
		MatchCandidatesFilteredTotal: filtered,
		OffersExpiredTotal:           expired,
		RatingEventsConsumedTotal:    consumed,
	}, nil
}

func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
