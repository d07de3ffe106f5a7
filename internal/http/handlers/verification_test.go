package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/domain"
	"service-freight-match/internal/logx"
)

type stubVerificationUsecase struct {
	submitFn   func(ctx context.Context, accountID string, kind domain.DocumentKind) (*domain.VerificationDocument, error)
	reviewFn   func(ctx context.Context, documentID string, decision domain.DocumentStatus, reviewerID, reason string) (*domain.VerificationDocument, error)
	listFn     func(ctx context.Context, accountID string) ([]domain.VerificationDocument, error)
	eligibleFn func(ctx context.Context, accountID string) (bool, error)
}

func (s *stubVerificationUsecase) Submit(ctx context.Context, accountID string, kind domain.DocumentKind) (*domain.VerificationDocument, error) {
	if s.submitFn == nil {
		panic("Submit not expected in this test")
	}
	return s.submitFn(ctx, accountID, kind)
}

func (s *stubVerificationUsecase) Review(ctx context.Context, documentID string, decision domain.DocumentStatus, reviewerID, reason string) (*domain.VerificationDocument, error) {
	if s.reviewFn == nil {
		panic("Review not expected in this test")
	}
	return s.reviewFn(ctx, documentID, decision, reviewerID, reason)
}

func (s *stubVerificationUsecase) ListDocuments(ctx context.Context, accountID string) ([]domain.VerificationDocument, error) {
	if s.listFn == nil {
		panic("ListDocuments not expected in this test")
	}
	return s.listFn(ctx, accountID)
}

func (s *stubVerificationUsecase) IsPublishEligible(ctx context.Context, accountID string) (bool, error) {
	if s.eligibleFn == nil {
		panic("IsPublishEligible not expected in this test")
	}
	return s.eligibleFn(ctx, accountID)
}

func TestVerificationHandler_Submit_Created(t *testing.T) {
	t.Parallel()

	body := `{"kind":"INSURANCE"}`
	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/documents", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withURLParam(req, "id", "acc-1")
	rr := httptest.NewRecorder()

	submittedAt := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	uc := &stubVerificationUsecase{
		submitFn: func(_ context.Context, accountID string, kind domain.DocumentKind) (*domain.VerificationDocument, error) {
			require.Equal(t, "acc-1", accountID)
			require.Equal(t, domain.DocInsurance, kind)
			return &domain.VerificationDocument{
				ID:          "doc-1",
				AccountID:   accountID,
				Kind:        kind,
				Status:      domain.DocPending,
				SubmittedAt: submittedAt,
			}, nil
		},
	}

	NewVerificationHandler(logx.Nop(), uc).Submit(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/documents/doc-1", rr.Header().Get("Location"))
	assert.JSONEq(t, `{
        "id": "doc-1",
        "account_id": "acc-1",
        "kind": "INSURANCE",
        "status": "PENDING",
        "submitted_at": "2026-02-03T04:05:06Z"
    }`, rr.Body.String())
}

func TestVerificationHandler_Submit_Conflict(t *testing.T) {
	t.Parallel()

	body := `{"kind":"INSURANCE"}`
	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/documents", strings.NewReader(body))
	req = withURLParam(req, "id", "acc-1")
	rr := httptest.NewRecorder()

	uc := &stubVerificationUsecase{
		submitFn: func(context.Context, string, domain.DocumentKind) (*domain.VerificationDocument, error) {
			return nil, apperr.Conflict
		},
	}

	NewVerificationHandler(logx.Nop(), uc).Submit(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestVerificationHandler_Submit_BadJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/documents", strings.NewReader(`{"kind":`))
	req = withURLParam(req, "id", "acc-1")
	rr := httptest.NewRecorder()

	NewVerificationHandler(logx.Nop(), &stubVerificationUsecase{}).Submit(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVerificationHandler_Review_OK(t *testing.T) {
	t.Parallel()

	body := `{"decision":"REJECTED","reviewer_id":"admin-1","reason":"expired policy"}`
	req := httptest.NewRequest(http.MethodPost, "/documents/doc-1/review", strings.NewReader(body))
	req = withURLParam(req, "id", "doc-1")
	rr := httptest.NewRecorder()

	reviewedAt := time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)
	uc := &stubVerificationUsecase{
		reviewFn: func(_ context.Context, documentID string, decision domain.DocumentStatus, reviewerID, reason string) (*domain.VerificationDocument, error) {
			require.Equal(t, "doc-1", documentID)
			require.Equal(t, domain.DocRejected, decision)
			require.Equal(t, "admin-1", reviewerID)
			require.Equal(t, "expired policy", reason)
			return &domain.VerificationDocument{
				ID:           documentID,
				AccountID:    "acc-1",
				Kind:         domain.DocInsurance,
				Status:       domain.DocRejected,
				SubmittedAt:  reviewedAt.Add(-time.Hour),
				ReviewerID:   reviewerID,
				RejectReason: reason,
				ReviewedAt:   &reviewedAt,
			}, nil
		},
	}

	NewVerificationHandler(logx.Nop(), uc).Review(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"REJECTED"`)
	assert.Contains(t, rr.Body.String(), `"reject_reason":"expired policy"`)
}

func TestVerificationHandler_Review_Conflict(t *testing.T) {
	t.Parallel()

	body := `{"decision":"APPROVED","reviewer_id":"admin-2"}`
	req := httptest.NewRequest(http.MethodPost, "/documents/doc-1/review", strings.NewReader(body))
	req = withURLParam(req, "id", "doc-1")
	rr := httptest.NewRecorder()

	uc := &stubVerificationUsecase{
		reviewFn: func(context.Context, string, domain.DocumentStatus, string, string) (*domain.VerificationDocument, error) {
			return nil, apperr.Conflict
		},
	}

	NewVerificationHandler(logx.Nop(), uc).Review(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"document already reviewed"}`, rr.Body.String())
}

func TestVerificationHandler_List_OK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/documents", nil)
	req = withURLParam(req, "id", "acc-1")
	rr := httptest.NewRecorder()

	uc := &stubVerificationUsecase{
		listFn: func(_ context.Context, accountID string) ([]domain.VerificationDocument, error) {
			require.Equal(t, "acc-1", accountID)
			return nil, nil
		},
	}

	NewVerificationHandler(logx.Nop(), uc).List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestVerificationHandler_PublishEligible(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/publish-eligible", nil)
	req = withURLParam(req, "id", "acc-1")
	rr := httptest.NewRecorder()

	uc := &stubVerificationUsecase{
		eligibleFn: func(_ context.Context, accountID string) (bool, error) {
			return true, nil
		},
	}

	NewVerificationHandler(logx.Nop(), uc).PublishEligible(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"account_id":"acc-1","eligible":true}`, rr.Body.String())
}

func TestVerificationHandler_PublishEligible_UnknownAccount(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/accounts/ghost/publish-eligible", nil)
	req = withURLParam(req, "id", "ghost")
	rr := httptest.NewRecorder()

	uc := &stubVerificationUsecase{
		eligibleFn: func(context.Context, string) (bool, error) {
			return false, apperr.NotFound
		},
	}

	NewVerificationHandler(logx.Nop(), uc).PublishEligible(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
