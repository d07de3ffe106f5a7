package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"service-freight-match/internal/domain"
)

// VehicleRepo represents vehicle offer repository.
type VehicleRepo struct{ db *pgxpool.Pool }

// NewVehicleRepo creates a new VehicleRepo.
func NewVehicleRepo(db *pgxpool.Pool) *VehicleRepo { return &VehicleRepo{db: db} }

// ListAvailableVehicles returns all offers in AVAILABLE status.
func (r *VehicleRepo) ListAvailableVehicles(ctx context.Context) ([]domain.VehicleOffer, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, carrier_id, vehicle_type, max_weight_kg, regions,
               available_from, available_until, price_per_km_cents,
               feature_tags, status
        FROM vehicle_offers
        WHERE status=$1
        ORDER BY id
    `, domain.OfferAvailable)
	if err != nil {
		return nil, fmt.Errorf("list available vehicles: %w", err)
	}
	defer rows.Close()

	var out []domain.VehicleOffer
	for rows.Next() {
		var v domain.VehicleOffer
		err := rows.Scan(
			&v.ID, &v.CarrierID, &v.VehicleType, &v.MaxWeightKg, &v.Regions,
			&v.AvailableFrom, &v.AvailableUntil, &v.PricePerKmCents,
			&v.FeatureTags, &v.Status,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ExpireOffers moves AVAILABLE offers whose window has closed to EXPIRED.
// Returns the number of offers expired.
func (r *VehicleRepo) ExpireOffers(ctx context.Context, now time.Time) (int64, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE vehicle_offers
        SET status=$1
        WHERE status=$2 AND available_until < $3
    `, domain.OfferExpired, domain.OfferAvailable, now)
	if err != nil {
		return 0, fmt.Errorf("expire offers: %w", err)
	}
	return ct.RowsAffected(), nil
}
