package trust

import (
	"fmt"
	"math"

	"service-freight-match/internal/apperr"
)

// Factor names used in score breakdowns.
const (
	FactorPaymentHistory    = "payment_history"
	FactorTransactionVolume = "transaction_volume"
	FactorResponseTime      = "response_time"
	FactorCompletionRate    = "completion_rate"
	FactorUserFeedback      = "user_feedback"
	FactorAccountAge        = "account_age"
)

// Weights is a validated weight table over the trust sub-factors.
// Weights must be in [0,1] and sum to exactly 1.0.
type Weights struct {
	PaymentHistory    float64
	TransactionVolume float64
	ResponseTime      float64
	CompletionRate    float64
	UserFeedback      float64
	AccountAge        float64
}

const weightSumTolerance = 1e-9

// Validate rejects malformed weight tables before any score is computed.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		FactorPaymentHistory:    w.PaymentHistory,
		FactorTransactionVolume: w.TransactionVolume,
		FactorResponseTime:      w.ResponseTime,
		FactorCompletionRate:    w.CompletionRate,
		FactorUserFeedback:      w.UserFeedback,
		FactorAccountAge:        w.AccountAge,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: weight %s=%v out of [0,1]", apperr.Config, name, v)
		}
	}
	sum := w.PaymentHistory + w.TransactionVolume + w.ResponseTime +
		w.CompletionRate + w.UserFeedback + w.AccountAge
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: trust weights sum to %v, want 1.0", apperr.Config, sum)
	}
	return nil
}

// DefaultCreditWeights is the weight table behind the user-facing credit score.
func DefaultCreditWeights() Weights {
	return Weights{
		PaymentHistory:    0.35,
		TransactionVolume: 0.25,
		ResponseTime:      0.20,
		CompletionRate:    0.15,
		UserFeedback:      0.05,
	}
}

// DefaultProfileWeights is the weight table behind the publicly shown profile
// trust score. Kept separate from the credit table; the two are never conflated.
func DefaultProfileWeights() Weights {
	return Weights{
		TransactionVolume: 0.10,
		ResponseTime:      0.15,
		CompletionRate:    0.25,
		UserFeedback:      0.35,
		AccountAge:        0.15,
	}
}
