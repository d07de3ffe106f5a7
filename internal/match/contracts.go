package match

import (
	"context"

	"service-freight-match/internal/domain"
)

// matchRepository defines the snapshot reads required by a match query.
type matchRepository interface {
	GetShipment(ctx context.Context, id string) (*domain.ShipmentRequest, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	GetRegion(ctx context.Context, code string) (*domain.Region, error)
	// ListAvailableVehicles returns the candidate pool already scoped to
	// AVAILABLE status; all further narrowing is the engine's job.
	ListAvailableVehicles(ctx context.Context) ([]domain.VehicleOffer, error)
}

// publishEligibility gates whether a carrier's offers may enter the pool.
type publishEligibility interface {
	IsPublishEligible(ctx context.Context, accountID string) (bool, error)
}

// counter abstracts a metrics counter (e.g. prometheus.Counter).
type counter interface {
	Add(delta float64)
}
