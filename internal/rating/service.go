package rating

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/domain"
	"service-freight-match/internal/logx"
)

// Service records peer ratings. Each rating is immutable once created and
// feeds the rated account's running feedback aggregate.
type Service struct {
	repo             ratingRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() string
}

// NewService creates and configures a rating Service.
func NewService(r ratingRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            func() string { return uuid.NewString() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Record validates and persists one rating.
func (s *Service) Record(ctx context.Context, raterID, ratedID string, score int, comment string) (*domain.Rating, error) {
	raterID = strings.TrimSpace(raterID)
	ratedID = strings.TrimSpace(ratedID)
	if raterID == "" || ratedID == "" || raterID == ratedID {
		return nil, apperr.Invalid
	}
	if !domain.ValidScore(score) {
		return nil, apperr.Invalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	for _, id := range []string{raterID, ratedID} {
		acc, err := s.repo.GetAccount(ctx, id)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			return nil, apperr.NotFound
		}
	}

	r := &domain.Rating{
		ID:        s.newID(),
		RaterID:   raterID,
		RatedID:   ratedID,
		Score:     score,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: s.now(),
	}
	if err := s.repo.InsertRating(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("rating recorded",
		logx.String("event", "rating_recorded"),
		logx.String("rating_id", r.ID),
		logx.String("rated_id", ratedID),
		logx.Int("score", score),
	)
	return r, nil
}
