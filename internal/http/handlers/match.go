package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/logx"
	"service-freight-match/internal/match"
)

// MatchHandler serves HTTP endpoints for match queries.
type MatchHandler struct {
	usecase matchUsecase
	logger  logx.Logger
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(logger logx.Logger, uc matchUsecase) *MatchHandler {
	return &MatchHandler{usecase: uc, logger: logger}
}

// Get handles GET /match/{shipmentID}?top_n=&min_score=.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	shipmentID := strings.TrimSpace(chi.URLParam(r, "shipmentID"))
	if shipmentID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid shipment id")
		return
	}

	var opts match.Options
	q := r.URL.Query()
	if s := q.Get("top_n"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid top_n")
			return
		}
		opts.TopN = v
	}
	if s := q.Get("min_score"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 || v > 100 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid min_score")
			return
		}
		opts.MinScore = v
	}

	res, err := h.usecase.Match(r.Context(), shipmentID, opts)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, matchResultToResponse(shipmentID, res))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "shipment not matchable")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "shipment not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
