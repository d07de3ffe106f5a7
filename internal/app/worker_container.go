package app

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-freight-match/internal/config"
	"service-freight-match/internal/logx"
	"service-freight-match/internal/rating"
	"service-freight-match/internal/repository"
	"service-freight-match/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the DI container for the background worker.
func (b *ContainerBuilder) MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

// MustBuildWorkerContainer builds the DI container for the background worker.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorkerContainer(ctx)
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

type consumerIn struct {
	dig.In

	Cfg      *config.Config
	Logger   logx.Logger
	Svc      *rating.Service
	Consumed prometheus.Counter `name:"rating_events_consumed_total"`
}

type expiryIn struct {
	dig.In

	Cfg     *config.Config
	Store   *repository.Store
	Logger  logx.Logger
	Expired prometheus.Counter `name:"offers_expired_total"`
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewStore,
		func() time.Duration { return 3 * time.Second },
		func(store *repository.Store, timeout time.Duration, logger logx.Logger) *rating.Service {
			return rating.NewService(store, timeout, logger)
		},
		provideMetrics,
		func(in consumerIn) (*kafka.Consumer, error) {
			return kafka.NewConsumer(
				in.Logger,
				in.Cfg.Kafka.Brokers,
				in.Cfg.Kafka.GroupID,
				in.Cfg.Kafka.Topic,
				makeRatingsKafka(in.Svc, in.Consumed),
			)
		},
		func(in expiryIn) *OfferExpiryLoop {
			return NewOfferExpiryLoop(in.Store, in.Cfg.Worker.OfferExpiryInterval, in.Logger, in.Expired)
		},
	)
}
