package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-freight-match/internal/domain"
)

// AccountRepo represents account repository.
type AccountRepo struct{ db *pgxpool.Pool }

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(db *pgxpool.Pool) *AccountRepo { return &AccountRepo{db: db} }

// GetAccount - returns account by its ID.
func (r *AccountRepo) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRow(ctx, `
        SELECT id, role, active, specialty_tags,
               payment_score, completed_shipments, total_shipments,
               transaction_volume, rating_sum, rating_count,
               avg_reply_minutes, registered_at
        FROM accounts WHERE id=$1
    `, id).Scan(
		&a.ID, &a.Role, &a.Active, &a.SpecialtyTags,
		&a.PaymentScore, &a.CompletedShipments, &a.TotalShipments,
		&a.TransactionVolume, &a.RatingSum, &a.RatingCount,
		&a.AvgReplyMinutes, &a.RegisteredAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account %s: %w", id, err)
	}
	return &a, nil
}
