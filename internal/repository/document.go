package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/domain"
)

// DocumentRepo represents verification document repository.
type DocumentRepo struct{ db *pgxpool.Pool }

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *pgxpool.Pool) *DocumentRepo { return &DocumentRepo{db: db} }

const documentColumns = `id, account_id, kind, status, submitted_at, reviewer_id, reject_reason, reviewed_at`

func scanDocument(row pgx.Row) (*domain.VerificationDocument, error) {
	var d domain.VerificationDocument
	err := row.Scan(
		&d.ID, &d.AccountID, &d.Kind, &d.Status,
		&d.SubmittedAt, &d.ReviewerID, &d.RejectReason, &d.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDocument - returns document by its ID.
func (r *DocumentRepo) GetDocument(ctx context.Context, id string) (*domain.VerificationDocument, error) {
	d, err := scanDocument(r.db.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM verification_documents WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}
	return d, nil
}

// ListDocuments returns all documents of an account, oldest first.
func (r *DocumentRepo) ListDocuments(ctx context.Context, accountID string) ([]domain.VerificationDocument, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+documentColumns+` FROM verification_documents WHERE account_id=$1 ORDER BY submitted_at, id`,
		accountID)
	if err != nil {
		return nil, fmt.Errorf("list documents for %s: %w", accountID, err)
	}
	defer rows.Close()

	var out []domain.VerificationDocument
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// InsertDocument - creates a new verification document.
func (r *DocumentRepo) InsertDocument(ctx context.Context, d *domain.VerificationDocument) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO verification_documents (id, account_id, kind, status, submitted_at, reviewer_id, reject_reason)
        VALUES ($1, $2, $3, $4, $5, '', '')
    `, d.ID, d.AccountID, d.Kind, d.Status, d.SubmittedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflict
		}
		return fmt.Errorf("insert document %s: %w", d.ID, err)
	}
	return nil
}

// ReviewPending applies a review decision to a document that is still
// PENDING and appends the decision log entry in the same transaction.
// Returns nil when the conditional update matched no row.
func (r *DocumentRepo) ReviewPending(ctx context.Context, decision domain.ReviewDecision) (*domain.VerificationDocument, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	doc, err := scanDocument(tx.QueryRow(ctx, `
        UPDATE verification_documents
        SET status=$2, reviewer_id=$3, reject_reason=$4, reviewed_at=$5
        WHERE id=$1 AND status=$6
        RETURNING `+documentColumns,
		decision.DocumentID, decision.Status, decision.ReviewerID,
		decision.Reason, decision.DecidedAt, domain.DocPending))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("review document %s: %w", decision.DocumentID, err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO review_decisions (id, document_id, reviewer_id, status, reason, decided_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, decision.ID, decision.DocumentID, decision.ReviewerID,
		decision.Status, decision.Reason, decision.DecidedAt)
	if err != nil {
		return nil, fmt.Errorf("insert review decision %s: %w", decision.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return doc, nil
}

// ListDecisions returns the append-only decision log of a document.
func (r *DocumentRepo) ListDecisions(ctx context.Context, documentID string) ([]domain.ReviewDecision, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, document_id, reviewer_id, status, reason, decided_at
        FROM review_decisions WHERE document_id=$1 ORDER BY decided_at, id
    `, documentID)
	if err != nil {
		return nil, fmt.Errorf("list decisions for %s: %w", documentID, err)
	}
	defer rows.Close()

	var out []domain.ReviewDecision
	for rows.Next() {
		var d domain.ReviewDecision
		if err := rows.Scan(&d.ID, &d.DocumentID, &d.ReviewerID, &d.Status, &d.Reason, &d.DecidedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
