package verification

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/domain"
	"service-freight-match/internal/logx"
)

// Service tracks the per-account document-approval lifecycle and gates
// marketplace participation.
type Service struct {
	repo             documentRepository
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() string
}

// NewService creates and configures a verification Service.
func NewService(r documentRepository, timeout time.Duration, logger logx.Logger) *Service {
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

// Submit creates a new PENDING document of the given kind. Allowed only from
// the NONE or REJECTED state: an open or already approved submission of the
// same kind blocks a new one. A rejected document is never mutated.
func (s *Service) Submit(ctx context.Context, accountID string, kind domain.DocumentKind) (*domain.VerificationDocument, error) {
	if strings.TrimSpace(accountID) == "" || !kind.Valid() {
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

	docs, err := s.repo.ListDocuments(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !StateForKind(docs, kind).CanSubmit() {
		return nil, apperr.Conflict
	}

	doc := &domain.VerificationDocument{
		ID:          s.newID(),
		AccountID:   accountID,
		Kind:        kind,
		Status:      domain.DocPending,
		SubmittedAt: s.now(),
	}
	if err := s.repo.InsertDocument(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document submitted",
		logx.String("event", "document_submitted"),
		logx.String("document_id", doc.ID),
		logx.String("account_id", accountID),
		logx.String("kind", string(kind)),
	)
	return doc, nil
}

// Review applies an admin decision to a PENDING document. Rejection requires
// a non-empty reason. The transition is conditioned on the document still
// being PENDING: a second review attempt fails with Conflict instead of
// silently overwriting the first decision.
func (s *Service) Review(ctx context.Context, documentID string, decision domain.DocumentStatus, reviewerID, reason string) (*domain.VerificationDocument, error) {
	if strings.TrimSpace(documentID) == "" || strings.TrimSpace(reviewerID) == "" {
		return nil, apperr.Invalid
	}
	if decision != domain.DocApproved && decision != domain.DocRejected {
		return nil, apperr.Invalid
	}
	if decision == domain.DocRejected && strings.TrimSpace(reason) == "" {
		return nil, apperr.Invalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doc, err := s.repo.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperr.NotFound
	}

	reviewed, err := s.repo.ReviewPending(ctx, domain.ReviewDecision{
		ID:         s.newID(),
		DocumentID: documentID,
		ReviewerID: reviewerID,
		Status:     decision,
		Reason:     strings.TrimSpace(reason),
		DecidedAt:  s.now(),
	})
	if err != nil {
		return nil, err
	}
	if reviewed == nil {
		// the document was no longer PENDING: another reviewer won
		return nil, apperr.Conflict
	}

	s.logger.Info("document reviewed",
		logx.String("event", "document_reviewed"),
		logx.String("document_id", documentID),
		logx.String("reviewer_id", reviewerID),
		logx.String("decision", string(decision)),
	)
	return reviewed, nil
}

// ListDocuments returns all verification documents of an account.
func (s *Service) ListDocuments(ctx context.Context, accountID string) ([]domain.VerificationDocument, error) {
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
	return s.repo.ListDocuments(ctx, accountID)
}

// IsPublishEligible reports whether every required document kind has at
// least one approved document. Optional kinds never block. The document
// list is read on every call so eligibility changes are observed
// immediately.
func (s *Service) IsPublishEligible(ctx context.Context, accountID string) (bool, error) {
	if strings.TrimSpace(accountID) == "" {
		return false, apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	acc, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	if acc == nil {
		return false, apperr.NotFound
	}
	if !acc.Active {
		return false, nil
	}

	docs, err := s.repo.ListDocuments(ctx, accountID)
	if err != nil {
		return false, err
	}
	for _, kind := range domain.RequiredDocumentKinds {
		if StateForKind(docs, kind) != StateApproved {
			return false, nil
		}
	}
	return true, nil
}
