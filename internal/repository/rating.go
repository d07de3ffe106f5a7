package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/domain"
)

// RatingRepo represents rating repository.
type RatingRepo struct{ db *pgxpool.Pool }

// NewRatingRepo creates a new RatingRepo.
func NewRatingRepo(db *pgxpool.Pool) *RatingRepo { return &RatingRepo{db: db} }

// InsertRating persists the rating and bumps the rated account's running
// (sum, count) aggregate in the same transaction. The aggregate is applied
// as a single in-place increment so concurrent submissions serialize on the
// account row instead of racing a read-modify-write.
func (r *RatingRepo) InsertRating(ctx context.Context, rt *domain.Rating) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	_, err = tx.Exec(ctx, `
        INSERT INTO ratings (id, rater_id, rated_id, score, comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, rt.ID, rt.RaterID, rt.RatedID, rt.Score, rt.Comment, rt.CreatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflict
		}
		return fmt.Errorf("insert rating %s: %w", rt.ID, err)
	}

	ct, err := tx.Exec(ctx, `
        UPDATE accounts
        SET rating_sum = rating_sum + $2,
            rating_count = rating_count + 1
        WHERE id = $1
    `, rt.RatedID, rt.Score)
	if err != nil {
		return fmt.Errorf("bump rating aggregate for %s: %w", rt.RatedID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperr.NotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListRatings returns ratings received by an account, newest first.
func (r *RatingRepo) ListRatings(ctx context.Context, ratedID string, limit int) ([]domain.Rating, error) {
	q := `SELECT id, rater_id, rated_id, score, comment, created_at
          FROM ratings WHERE rated_id=$1 ORDER BY created_at DESC, id`
	args := []any{ratedID}
	if limit > 0 {
		q += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list ratings for %s: %w", ratedID, err)
	}
	defer rows.Close()

	var out []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.ID, &rt.RaterID, &rt.RatedID, &rt.Score, &rt.Comment, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
