package trust

import (
	"math"
	"time"

	"service-freight-match/internal/domain"
)

// Normalization constants for trust sub-factors.
const (
	// maxReplyMinutes is the reply latency at which the response-time
	// score bottoms out (24 hours).
	maxReplyMinutes = 1440.0
	// fullVolumeTransactions is the transaction count earning a full
	// transaction-volume score.
	fullVolumeTransactions = 100.0
	// fullAgeMonths is the account age earning a full account-age score.
	fullAgeMonths = 24.0
)

// ScoreResult is a composite trust score with its per-factor breakdown.
type ScoreResult struct {
	Score     int
	Breakdown domain.FactorBreakdown
}

// Calculator derives composite 0-100 trust scores from weighted, normalized
// sub-factors. It is pure: each call reads only the supplied account snapshot.
type Calculator struct {
	credit  Weights
	profile Weights
	now     func() time.Time
}

// NewCalculator validates both weight tables and returns a Calculator.
// Malformed tables fail fast so scores can never silently drift.
func NewCalculator(credit, profile Weights) (*Calculator, error) {
	if err := credit.Validate(); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{
		credit:  credit,
		profile: profile,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// CreditScore computes the user-facing credit score.
func (c *Calculator) CreditScore(acc *domain.Account) ScoreResult {
	return c.compose(acc, c.credit)
}

// ProfileScore computes the publicly shown profile trust score.
func (c *Calculator) ProfileScore(acc *domain.Account) ScoreResult {
	return c.compose(acc, c.profile)
}

func (c *Calculator) compose(acc *domain.Account, w Weights) ScoreResult {
	b := c.Normalize(acc)
	composite := b[FactorPaymentHistory]*w.PaymentHistory +
		b[FactorTransactionVolume]*w.TransactionVolume +
		b[FactorResponseTime]*w.ResponseTime +
		b[FactorCompletionRate]*w.CompletionRate +
		b[FactorUserFeedback]*w.UserFeedback +
		b[FactorAccountAge]*w.AccountAge
	return ScoreResult{
		Score:     int(math.Round(clamp(composite, 0, 100))),
		Breakdown: b,
	}
}

// Normalize maps the account's raw trust inputs to 0-100 sub-factor scores.
func (c *Calculator) Normalize(acc *domain.Account) domain.FactorBreakdown {
	return domain.FactorBreakdown{
		FactorPaymentHistory:    clamp(acc.PaymentScore, 0, 100),
		FactorTransactionVolume: volumeScore(acc.TransactionVolume),
		FactorResponseTime:      ResponseScore(acc.AvgReplyMinutes),
		FactorCompletionRate:    completionScore(acc.CompletedShipments, acc.TotalShipments),
		FactorUserFeedback:      feedbackScore(acc.AverageRating()),
		FactorAccountAge:        ageScore(acc.AgeMonths(c.now())),
	}
}

// ResponseScore is the inverse of average reply latency, clamped to [0,100].
// Accounts with no reply history score full marks (vacuous case).
func ResponseScore(avgReplyMinutes float64) float64 {
	if avgReplyMinutes <= 0 {
		return 100
	}
	return 100 * clamp(1-avgReplyMinutes/maxReplyMinutes, 0, 1)
}

func volumeScore(volume int64) float64 {
	if volume <= 0 {
		return 0
	}
	return 100 * math.Min(float64(volume)/fullVolumeTransactions, 1)
}

// completionScore is 100 when no shipments have been requested yet:
// zero history is not a failure.
func completionScore(completed, total int64) float64 {
	if total <= 0 {
		return 100
	}
	return clamp(100*float64(completed)/float64(total), 0, 100)
}

func feedbackScore(avgRating float64) float64 {
	return clamp(avgRating*20, 0, 100)
}

func ageScore(months int) float64 {
	return 100 * math.Min(float64(months)/fullAgeMonths, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
