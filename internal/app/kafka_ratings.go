package app

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/rating"
	"service-freight-match/internal/transport/kafka"
)

// makeRatingsKafka adapts the rating service to the Kafka event stream.
// Validation failures are permanent: retrying a malformed or self-referential
// rating can never succeed, so the event is dropped rather than re-queued.
func makeRatingsKafka(svc *rating.Service, consumed prometheus.Counter) kafka.HandleFunc {
	return func(ctx context.Context, ev kafka.RatingEvent) error {
		_, err := svc.Record(ctx, ev.RaterID, ev.RatedID, ev.Score, ev.Comment)
		switch {
		case err == nil:
			if consumed != nil {
				consumed.Inc()
			}
			return nil
		case errors.Is(err, apperr.Invalid), errors.Is(err, apperr.NotFound), errors.Is(err, apperr.Conflict):
			return kafka.Permanent(err)
		default:
			return err
		}
	}
}
