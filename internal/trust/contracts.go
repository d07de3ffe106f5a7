package trust

import (
	"context"

	"service-freight-match/internal/domain"
)

// accountReader defines the storage read required by the trust layer.
type accountReader interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
}
