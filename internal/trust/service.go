package trust

import (
	"context"
	"strings"
	"time"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/domain"
)

// Scores carries both named calculator outputs for one account.
type Scores struct {
	AccountID    string
	CreditScore  int
	ProfileScore int
	Breakdown    domain.FactorBreakdown
}

// Service reads the current account snapshot and computes its trust scores.
type Service struct {
	repo             accountReader
	calc             *Calculator
	operationTimeout time.Duration
}

// NewService creates and configures a trust Service.
func NewService(r accountReader, calc *Calculator, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, calc: calc, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Scores returns the credit and profile trust scores for an account,
// computed from its current snapshot.
func (s *Service) Scores(ctx context.Context, accountID string) (*Scores, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	acc, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, apperr.NotFound
	}

	credit := s.calc.CreditScore(acc)
	profile := s.calc.ProfileScore(acc)
	return &Scores{
		AccountID:    acc.ID,
		CreditScore:  credit.Score,
		ProfileScore: profile.Score,
		Breakdown:    credit.Breakdown,
	}, nil
}
