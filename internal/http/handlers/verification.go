package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/logx"
)

// VerificationHandler serves HTTP endpoints for verification documents.
type VerificationHandler struct {
	usecase verificationUsecase
	logger  logx.Logger
}

// NewVerificationHandler creates a new VerificationHandler.
func NewVerificationHandler(logger logx.Logger, uc verificationUsecase) *VerificationHandler {
	return &VerificationHandler{usecase: uc, logger: logger}
}

// Submit handles POST /accounts/{id}/documents.
func (h *VerificationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	accountID := strings.TrimSpace(chi.URLParam(r, "id"))
	if accountID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid account id")
		return
	}

	var req submitDocumentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	doc, err := h.usecase.Submit(r.Context(), accountID, req.Kind)
	switch {
	case err == nil:
		w.Header().Set("Location", "/documents/"+doc.ID)
		writeJSON(h.logger, w, r, http.StatusCreated, documentToDTO(doc))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "account not found")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "document of this kind already pending or approved")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /accounts/{id}/documents.
func (h *VerificationHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID := strings.TrimSpace(chi.URLParam(r, "id"))
	if accountID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid account id")
		return
	}

	docs, err := h.usecase.ListDocuments(r.Context(), accountID)
	switch {
	case err == nil:
		out := make([]documentDTO, 0, len(docs))
		for i := range docs {
			out = append(out, documentToDTO(&docs[i]))
		}
		writeJSON(h.logger, w, r, http.StatusOK, out)
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "account not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Review handles POST /documents/{id}/review.
func (h *VerificationHandler) Review(w http.ResponseWriter, r *http.Request) {
	documentID := strings.TrimSpace(chi.URLParam(r, "id"))
	if documentID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid document id")
		return
	}

	var req reviewDocumentRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	doc, err := h.usecase.Review(r.Context(), documentID, req.Decision, req.ReviewerID, req.Reason)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, documentToDTO(doc))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "document not found")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "document already reviewed")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// PublishEligible handles GET /accounts/{id}/publish-eligible.
func (h *VerificationHandler) PublishEligible(w http.ResponseWriter, r *http.Request) {
	accountID := strings.TrimSpace(chi.URLParam(r, "id"))
	if accountID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid account id")
		return
	}

	ok, err := h.usecase.IsPublishEligible(r.Context(), accountID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, publishEligibleResponse{
			AccountID: accountID,
			Eligible:  ok,
		})
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "account not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
