package app

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"service-freight-match/internal/logx"
)

// offerExpirer moves stale AVAILABLE offers to EXPIRED.
type offerExpirer interface {
	ExpireOffers(ctx context.Context, now time.Time) (int64, error)
}

// OfferExpiryLoop periodically expires vehicle offers whose availability
// window has closed, so they stop entering match candidate pools.
type OfferExpiryLoop struct {
	repo     offerExpirer
	interval time.Duration
	logger   logx.Logger
	expired  prometheus.Counter
	now      func() time.Time
}

// NewOfferExpiryLoop creates a new OfferExpiryLoop.
func NewOfferExpiryLoop(repo offerExpirer, interval time.Duration, logger logx.Logger, expired prometheus.Counter) *OfferExpiryLoop {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &OfferExpiryLoop{
		repo:     repo,
		interval: interval,
		logger:   logger,
		expired:  expired,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run blocks until ctx is cancelled, expiring offers every interval.
func (l *OfferExpiryLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.tick(ctx)
		}
	}
}

func (l *OfferExpiryLoop) tick(ctx context.Context) {
	n, err := l.repo.ExpireOffers(ctx, l.now())
	if err != nil {
		l.logger.Error("offer expiry failed", logx.Err(err))
		return
	}
	if n > 0 {
		if l.expired != nil {
			l.expired.Add(float64(n))
		}
		l.logger.Info("offers expired", logx.Int64("count", n))
	}
}
