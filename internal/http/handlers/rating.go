package handlers

import (
	"errors"
	"net/http"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/logx"
)

// RatingHandler serves HTTP endpoints for peer ratings.
type RatingHandler struct {
	usecase ratingUsecase
	logger  logx.Logger
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(logger logx.Logger, uc ratingUsecase) *RatingHandler {
	return &RatingHandler{usecase: uc, logger: logger}
}

// Submit handles POST /ratings.
func (h *RatingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRatingRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	rt, err := h.usecase.Record(r.Context(), req.RaterID, req.RatedID, req.Score, req.Comment)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusCreated, ratingToDTO(rt))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "account not found")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "duplicate rating")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
