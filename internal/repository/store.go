package repository

import "github.com/jackc/pgx/v5/pgxpool"

// Store bundles the per-entity repositories behind one value. Services
// depend on their own narrow interfaces; Store satisfies all of them.
type Store struct {
	*AccountRepo
	*DocumentRepo
	*ShipmentRepo
	*RegionRepo
	*VehicleRepo
	*RatingRepo
}

// NewStore creates a Store over a shared connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		AccountRepo:  NewAccountRepo(db),
		DocumentRepo: NewDocumentRepo(db),
		ShipmentRepo: NewShipmentRepo(db),
		RegionRepo:   NewRegionRepo(db),
		VehicleRepo:  NewVehicleRepo(db),
		RatingRepo:   NewRatingRepo(db),
	}
}
