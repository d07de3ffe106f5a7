package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-freight-match/internal/config"
	"service-freight-match/internal/http/handlers"
	"service-freight-match/internal/http/pprofserver"
	"service-freight-match/internal/http/router"
	"service-freight-match/internal/logx"
	"service-freight-match/internal/match"
	"service-freight-match/internal/rating"
	"service-freight-match/internal/repository"
	"service-freight-match/internal/trust"
	"service-freight-match/internal/verification"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewStore,
		func() time.Duration { return 3 * time.Second },
		func() (*trust.Calculator, error) {
			return trust.NewCalculator(trust.DefaultCreditWeights(), trust.DefaultProfileWeights())
		},
		func(calc *trust.Calculator) (*match.Scorer, error) {
			return match.NewScorer(match.DefaultWeights(), calc)
		},
		func(store *repository.Store, calc *trust.Calculator, timeout time.Duration) *trust.Service {
			return trust.NewService(store, calc, timeout)
		},
		func(store *repository.Store, timeout time.Duration, logger logx.Logger) *verification.Service {
			return verification.NewService(store, timeout, logger)
		},
		func(store *repository.Store, timeout time.Duration, logger logx.Logger) *rating.Service {
			return rating.NewService(store, timeout, logger)
		},
		provideMetrics,
		newMatchService,
	)
}

type matchServiceIn struct {
	dig.In

	Store    *repository.Store
	Verifier *verification.Service
	Scorer   *match.Scorer
	Timeout  time.Duration
	Logger   logx.Logger
	Filtered prometheus.Counter `name:"match_candidates_filtered_total"`
}

func newMatchService(in matchServiceIn) *match.Service {
	return match.NewService(in.Store, in.Verifier, in.Scorer, in.Timeout, in.Logger, in.Filtered)
}

type pprofServerOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

func newPprofServer(cfg *config.Config) pprofServerOut {
	if !cfg.Pprof.Enabled {
		return pprofServerOut{}
	}
	return pprofServerOut{Server: &http.Server{
		Addr: cfg.Pprof.Addr,
		Handler: pprofserver.Handler(pprofserver.Config{
			User: cfg.Pprof.User,
			Pass: cfg.Pprof.Pass,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewMatchUsecase,
		handlers.NewMatchHandler,
		handlers.NewTrustUsecase,
		handlers.NewTrustHandler,
		handlers.NewVerificationUsecase,
		handlers.NewVerificationHandler,
		handlers.NewRatingUsecase,
		handlers.NewRatingHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
		newPprofServer,
	)
}
