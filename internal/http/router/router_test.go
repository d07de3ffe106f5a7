package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"service-freight-match/internal/http/handlers"
	"service-freight-match/internal/http/router"
	"service-freight-match/internal/logx"
)

func newTestRouter() http.Handler {
	base := handlers.New(logx.Nop())
	matchH := handlers.NewMatchHandler(logx.Nop(), nil)
	trustH := handlers.NewTrustHandler(logx.Nop(), nil)
	verifH := handlers.NewVerificationHandler(logx.Nop(), nil)
	ratingH := handlers.NewRatingHandler(logx.Nop(), nil)
	return router.New(logx.Nop(), base, matchH, trustH, verifH, ratingH, nil)
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}

func TestRouter_HealthcheckHead(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodHead, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"route not found"}`, rec.Body.String())
}
