package match

import (
	"context"
	"strings"
	"time"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/domain"
	"service-freight-match/internal/logx"
)

// Options bounds a match query.
type Options struct {
	TopN     int // 0 = unlimited
	MinScore int
}

// Result is the ordered outcome of one match query.
type Result struct {
	Candidates []domain.MatchResult
	Insights   domain.MatchInsights
}

// Service runs the eligibility → scoring → ranking pipeline over caller
// snapshots. It is stateless between calls; concurrent queries are safe.
type Service struct {
	repo             matchRepository
	verifier         publishEligibility
	scorer           *Scorer
	operationTimeout time.Duration
	logger           logx.Logger
	filtered         counter // candidates dropped by eligibility, may be nil
	now              func() time.Time
}

// NewService creates and configures a match Service.
func NewService(r matchRepository, verifier publishEligibility, scorer *Scorer, timeout time.Duration, logger logx.Logger, filtered counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		verifier:         verifier,
		scorer:           scorer,
		operationTimeout: timeout,
		logger:           logger,
		filtered:         filtered,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateShipment(sh *domain.ShipmentRequest) error {
	if sh.CargoWeightKg <= 0 || sh.BudgetCents <= 0 {
		return apperr.Invalid
	}
	if strings.TrimSpace(sh.VehicleType) == "" {
		return apperr.Invalid
	}
	if strings.TrimSpace(sh.PickupRegion) == "" || strings.TrimSpace(sh.DeliveryRegion) == "" {
		return apperr.Invalid
	}
	if !sh.Urgency.Valid() {
		return apperr.Invalid
	}
	if sh.DeliverBy.Before(sh.PickupAt) {
		return apperr.Invalid
	}
	if sh.Status.Terminal() {
		return apperr.Invalid
	}
	return nil
}

// Match ranks the eligible candidates for a shipment. Any computation error
// aborts the whole query; an empty eligible pool is an empty result, not an
// error.
func (s *Service) Match(ctx context.Context, shipmentID string, opts Options) (*Result, error) {
	if strings.TrimSpace(shipmentID) == "" || opts.TopN < 0 {
		return nil, apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sh, err := s.repo.GetShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, apperr.NotFound
	}
	if err := validateShipment(sh); err != nil {
		return nil, err
	}

	pickup, err := s.region(ctx, sh.PickupRegion)
	if err != nil {
		return nil, err
	}
	delivery, err := s.region(ctx, sh.DeliveryRegion)
	if err != nil {
		return nil, err
	}
	distanceKm := domain.DistanceKm(*pickup, *delivery)

	pool, err := s.repo.ListAvailableVehicles(ctx)
	if err != nil {
		return nil, err
	}

	carrierEligible, carriers, err := s.carrierSnapshots(ctx, pool)
	if err != nil {
		return nil, err
	}

	eligible := FilterEligible(sh, pool, carrierEligible)
	if s.filtered != nil {
		s.filtered.Add(float64(len(pool) - len(eligible)))
	}

	now := s.now()
	offers := make(map[string]*domain.VehicleOffer, len(eligible))
	scored := make([]domain.MatchResult, 0, len(eligible))
	for i := range eligible {
		v := &eligible[i]
		offers[v.ID] = v
		scored = append(scored, s.scorer.Score(sh, v, carriers[v.CarrierID], distanceKm, now))
	}

	ranked := Rank(scored, opts.TopN, opts.MinScore)

	s.logger.Info("match query",
		logx.String("event", "match_query"),
		logx.String("shipment_id", sh.ID),
		logx.Int("pool", len(pool)),
		logx.Int("eligible", len(eligible)),
		logx.Int("returned", len(ranked)),
		logx.Float64("distance_km", distanceKm),
	)

	return &Result{
		Candidates: ranked,
		Insights:   Insights(ranked, offers),
	}, nil
}

func (s *Service) region(ctx context.Context, code string) (*domain.Region, error) {
	r, err := s.repo.GetRegion(ctx, code)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperr.NotFound
	}
	return r, nil
}

// carrierSnapshots loads each distinct carrier once: its current account
// snapshot and publish eligibility, both read at query time.
func (s *Service) carrierSnapshots(ctx context.Context, pool []domain.VehicleOffer) (map[string]bool, map[string]*domain.Account, error) {
	eligible := make(map[string]bool)
	accounts := make(map[string]*domain.Account)
	for _, v := range pool {
		if _, seen := accounts[v.CarrierID]; seen {
			continue
		}
		acc, err := s.repo.GetAccount(ctx, v.CarrierID)
		if err != nil {
			return nil, nil, err
		}
		if acc == nil {
			// an offer whose carrier vanished is filtered, not fatal
			accounts[v.CarrierID] = nil
			eligible[v.CarrierID] = false
			continue
		}
		ok, err := s.verifier.IsPublishEligible(ctx, v.CarrierID)
		if err != nil {
			return nil, nil, err
		}
		accounts[v.CarrierID] = acc
		eligible[v.CarrierID] = ok
	}
	return eligible, accounts, nil
}
