package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-freight-match/internal/domain"
)

// ShipmentRepo represents shipment repository.
type ShipmentRepo struct{ db *pgxpool.Pool }

// NewShipmentRepo creates a new ShipmentRepo.
func NewShipmentRepo(db *pgxpool.Pool) *ShipmentRepo { return &ShipmentRepo{db: db} }

// GetShipment - returns shipment request by its ID.
func (r *ShipmentRepo) GetShipment(ctx context.Context, id string) (*domain.ShipmentRequest, error) {
	var s domain.ShipmentRequest
	err := r.db.QueryRow(ctx, `
        SELECT id, shipper_id, cargo_weight_kg, vehicle_type,
               pickup_region, delivery_region, pickup_at, deliver_by,
               budget_cents, urgency, requirement_tags, status, created_at
        FROM shipments WHERE id=$1
    `, id).Scan(
		&s.ID, &s.ShipperID, &s.CargoWeightKg, &s.VehicleType,
		&s.PickupRegion, &s.DeliveryRegion, &s.PickupAt, &s.DeliverBy,
		&s.BudgetCents, &s.Urgency, &s.RequirementTags, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment %s: %w", id, err)
	}
	return &s, nil
}

// RegionRepo represents region repository.
type RegionRepo struct{ db *pgxpool.Pool }

// NewRegionRepo creates a new RegionRepo.
func NewRegionRepo(db *pgxpool.Pool) *RegionRepo { return &RegionRepo{db: db} }

// GetRegion - returns region by its code.
func (r *RegionRepo) GetRegion(ctx context.Context, code string) (*domain.Region, error) {
	var reg domain.Region
	err := r.db.QueryRow(ctx,
		`SELECT code, lat, lon FROM regions WHERE code=$1`, code,
	).Scan(&reg.Code, &reg.Lat, &reg.Lon)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get region %s: %w", code, err)
	}
	return &reg, nil
}
