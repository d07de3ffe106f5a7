package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/logx"
)

// TrustHandler serves HTTP endpoints for trust scores.
type TrustHandler struct {
	usecase trustUsecase
	logger  logx.Logger
}

// NewTrustHandler creates a new TrustHandler.
func NewTrustHandler(logger logx.Logger, uc trustUsecase) *TrustHandler {
	return &TrustHandler{usecase: uc, logger: logger}
}

// Get handles GET /accounts/{id}/trust.
func (h *TrustHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID := strings.TrimSpace(chi.URLParam(r, "id"))
	if accountID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid account id")
		return
	}

	scores, err := h.usecase.Scores(r.Context(), accountID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, trustScoresResponse{
			AccountID:    scores.AccountID,
			CreditScore:  scores.CreditScore,
			ProfileScore: scores.ProfileScore,
			Breakdown:    scores.Breakdown,
		})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid account id")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "account not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
