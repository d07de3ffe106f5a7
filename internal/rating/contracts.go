package rating

import (
	"context"

	"service-freight-match/internal/domain"
)

// ratingRepository defines storage operations required by the rating layer.
//
// InsertRating must persist the rating and apply the rated account's
// (sum, count) aggregate as a single atomic increment, never a
// read-modify-write from a stale read, so concurrent submissions cannot
// double-count or drop.
type ratingRepository interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	InsertRating(ctx context.Context, r *domain.Rating) error
}
