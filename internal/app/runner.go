package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
)

// MustRun starts the HTTP server using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Server *http.Server
	Pool   *pgxpool.Pool
	Logger *log.Logger
	Pprof  *http.Server `name:"pprof_server" optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		startServer(in.Server, in.Logger)
		if in.Pprof != nil {
			startPprofServer(in.Pprof, in.Logger)
		}
		waitForShutdown(in.Ctx, in.Logger)
		gracefulShutdown(in.Server, in.Logger, 15*time.Second)
		if in.Pprof != nil {
			gracefulShutdown(in.Pprof, in.Logger, 15*time.Second)
		}
		closeResources(in.Pool, in.Server, in.Logger)
		return nil
	})
}

func startPprofServer(server *http.Server, logger *log.Logger) {
	go func() {
		logger.Printf("pprof listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Printf("pprof listen error: %v", err)
		}
	}()
}

func startServer(server *http.Server, logger *log.Logger) {
	go func() {
		logger.Printf("service-match listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger *log.Logger) {
	<-ctx.Done()
	logger.Println("shutting down service-match...")
}

func gracefulShutdown(srv *http.Server, logger *log.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger *log.Logger) {
	if err := server.Close(); err != nil {
		logger.Printf("server close error: %v", err)
	}
	if pool != nil {
		pool.Close()
	}
}
