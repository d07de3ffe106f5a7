package trust

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/domain"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(DefaultCreditWeights(), DefaultProfileWeights())
	require.NoError(t, err)
	calc.now = func() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }
	return calc
}

func TestNewCalculator_RejectsWeightsNotSummingToOne(t *testing.T) {
	t.Parallel()

	bad := Weights{PaymentHistory: 0.5, UserFeedback: 0.4}
	_, err := NewCalculator(bad, DefaultProfileWeights())
	require.ErrorIs(t, err, apperr.Config)

	_, err = NewCalculator(DefaultCreditWeights(), bad)
	require.ErrorIs(t, err, apperr.Config)
}

func TestNewCalculator_RejectsNegativeWeight(t *testing.T) {
	t.Parallel()

	bad := Weights{PaymentHistory: -0.1, TransactionVolume: 1.1}
	_, err := NewCalculator(bad, DefaultProfileWeights())
	require.ErrorIs(t, err, apperr.Config)
}

func TestCreditScore_FreshAccountCompletionIsVacuous(t *testing.T) {
	t.Parallel()

	calc := newTestCalculator(t)
	acc := &domain.Account{
		ID:           "acc-1",
		Role:         domain.RoleCarrier,
		RegisteredAt: time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC),
	}

	res := calc.CreditScore(acc)
	require.Equal(t, float64(100), res.Breakdown[FactorCompletionRate],
		"zero shipments must score 100, not divide by zero")
	require.GreaterOrEqual(t, res.Score, 0)
	require.LessOrEqual(t, res.Score, 100)
}

func TestCreditScore_KnownAccount(t *testing.T) {
	t.Parallel()

	calc := newTestCalculator(t)
	acc := &domain.Account{
		ID:                 "acc-2",
		Role:               domain.RoleCarrier,
		PaymentScore:       80,
		TransactionVolume:  50, // half of fullVolumeTransactions
		AvgReplyMinutes:    720, // half of maxReplyMinutes
		CompletedShipments: 9,
		TotalShipments:     10,
		RatingSum:          45, // avg 4.5 → 90
		RatingCount:        10,
		RegisteredAt:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	res := calc.CreditScore(acc)
	// .35*80 + .25*50 + .20*50 + .15*90 + .05*90 = 68.5 → 69 (age weight 0)
	require.Equal(t, 69, res.Score)
	require.Equal(t, float64(90), res.Breakdown[FactorCompletionRate])
	require.Equal(t, float64(90), res.Breakdown[FactorUserFeedback])
	require.Equal(t, float64(100), res.Breakdown[FactorAccountAge], "24 months is full age")
}

func TestProfileScore_DistinctFromCreditScore(t *testing.T) {
	t.Parallel()

	calc := newTestCalculator(t)
	acc := &domain.Account{
		ID:           "acc-3",
		PaymentScore: 100, // heavy in credit table, absent from profile table
		RegisteredAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	credit := calc.CreditScore(acc)
	profile := calc.ProfileScore(acc)
	require.NotEqual(t, credit.Score, profile.Score,
		"credit and profile tables weigh payment history differently")
}

func TestResponseScore_Clamped(t *testing.T) {
	t.Parallel()

	require.Equal(t, float64(100), ResponseScore(0))
	require.Equal(t, float64(100), ResponseScore(-5))
	require.Equal(t, float64(50), ResponseScore(720))
	require.Equal(t, float64(0), ResponseScore(5000))
}

func TestCreditScore_AlwaysInBounds(t *testing.T) {
	t.Parallel()

	calc := newTestCalculator(t)
	properties := gopter.NewProperties(nil)

	properties.Property("composite score stays within [0,100]", prop.ForAll(
		func(payment float64, volume int64, reply float64, completed, total int64, ratingSum, ratingCount int64) bool {
			acc := &domain.Account{
				PaymentScore:       payment,
				TransactionVolume:  volume,
				AvgReplyMinutes:    reply,
				CompletedShipments: completed,
				TotalShipments:     total,
				RatingSum:          ratingSum,
				RatingCount:        ratingCount,
				RegisteredAt:       time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			}
			res := calc.CreditScore(acc)
			return res.Score >= 0 && res.Score <= 100
		},
		gen.Float64Range(-50, 200),
		gen.Int64Range(0, 10_000),
		gen.Float64Range(0, 100_000),
		gen.Int64Range(0, 1_000),
		gen.Int64Range(0, 1_000),
		gen.Int64Range(0, 5_000),
		gen.Int64Range(0, 1_000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCreditScore_MonotoneInEachFactor(t *testing.T) {
	t.Parallel()

	calc := newTestCalculator(t)
	properties := gopter.NewProperties(nil)

	base := func(payment float64, reply float64) *domain.Account {
		return &domain.Account{
			PaymentScore:       payment,
			TransactionVolume:  40,
			AvgReplyMinutes:    reply,
			CompletedShipments: 5,
			TotalShipments:     10,
			RatingSum:          30,
			RatingCount:        10,
			RegisteredAt:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	properties.Property("raising payment history never lowers the composite", prop.ForAll(
		func(payment, delta float64) bool {
			lo := calc.CreditScore(base(payment, 300)).Score
			hi := calc.CreditScore(base(payment+delta, 300)).Score
			return hi >= lo
		},
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 100),
	))

	properties.Property("a slower reply latency never raises the composite", prop.ForAll(
		func(reply, delta float64) bool {
			fast := calc.CreditScore(base(70, reply)).Score
			slow := calc.CreditScore(base(70, reply+delta)).Score
			return slow <= fast
		},
		gen.Float64Range(0, 2000),
		gen.Float64Range(0, 2000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
