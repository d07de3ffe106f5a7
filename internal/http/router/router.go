package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-freight-match/internal/http/handlers"
	mw "service-freight-match/internal/http/middleware"
	"service-freight-match/internal/http/middleware/ratelimit"
	"service-freight-match/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// The rate limit middleware may be nil when limiting is disabled.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	matchH *handlers.MatchHandler,
	trustH *handlers.TrustHandler,
	verifH *handlers.VerificationHandler,
	ratingH *handlers.RatingHandler,
	limiter *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(mw.Observability(logger))
	if limiter != nil {
		r.Use(limiter.Handler())
	}

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/match/{shipmentID}", matchH.Get)

	r.Route("/accounts/{id}", func(r chi.Router) {
		r.Get("/trust", trustH.Get)
		r.Get("/publish-eligible", verifH.PublishEligible)
		r.Get("/documents", verifH.List)
		r.Post("/documents", verifH.Submit)
	})

	r.Post("/documents/{id}/review", verifH.Review)
	r.Post("/ratings", ratingH.Submit)

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
