package verification

import (
	"context"

	"service-freight-match/internal/domain"
)

// documentRepository defines storage operations required by the verification layer.
//
// ReviewPending must apply the decision only if the document is still PENDING
// (compare-and-set) and append the decision log entry atomically; it returns
// nil when the conditional update matched no row, i.e. the caller lost a
// concurrent review race.
type documentRepository interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	GetDocument(ctx context.Context, id string) (*domain.VerificationDocument, error)
	ListDocuments(ctx context.Context, accountID string) ([]domain.VerificationDocument, error)
	InsertDocument(ctx context.Context, d *domain.VerificationDocument) error
	ReviewPending(ctx context.Context, decision domain.ReviewDecision) (*domain.VerificationDocument, error)
}
