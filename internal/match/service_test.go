package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"service-freight-match/internal/apperr"
	"service-freight-match/internal/domain"
	"service-freight-match/internal/logx"
	"service-freight-match/internal/trust"
)

type mockMatchRepo struct {
	getShipmentFn func(ctx context.Context, id string) (*domain.ShipmentRequest, error)
	getAccountFn  func(ctx context.Context, id string) (*domain.Account, error)
	getRegionFn   func(ctx context.Context, code string) (*domain.Region, error)
	listFn        func(ctx context.Context) ([]domain.VehicleOffer, error)
}

func (m *mockMatchRepo) GetShipment(ctx context.Context, id string) (*domain.ShipmentRequest, error) {
	return m.getShipmentFn(ctx, id)
}

func (m *mockMatchRepo) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return m.getAccountFn(ctx, id)
}

func (m *mockMatchRepo) GetRegion(ctx context.Context, code string) (*domain.Region, error) {
	return m.getRegionFn(ctx, code)
}

func (m *mockMatchRepo) ListAvailableVehicles(ctx context.Context) ([]domain.VehicleOffer, error) {
	return m.listFn(ctx)
}

type stubVerifier struct {
	eligible map[string]bool
}

func (s stubVerifier) IsPublishEligible(_ context.Context, accountID string) (bool, error) {
	return s.eligible[accountID], nil
}

var testRegions = map[string]*domain.Region{
	"kanto":  {Code: "kanto", Lat: 35.68, Lon: 139.69},
	"kansai": {Code: "kansai", Lat: 34.69, Lon: 135.50},
}

func defaultRepo(sh *domain.ShipmentRequest, pool []domain.VehicleOffer, accounts map[string]*domain.Account) *mockMatchRepo {
	return &mockMatchRepo{
		getShipmentFn: func(ctx context.Context, id string) (*domain.ShipmentRequest, error) {
			if sh != nil && id == sh.ID {
				return sh, nil
			}
			return nil, nil
		},
		getAccountFn: func(ctx context.Context, id string) (*domain.Account, error) {
			return accounts[id], nil
		},
		getRegionFn: func(ctx context.Context, code string) (*domain.Region, error) {
			return testRegions[code], nil
		},
		listFn: func(ctx context.Context) ([]domain.VehicleOffer, error) {
			return pool, nil
		},
	}
}

func newMatchService(t *testing.T, repo *mockMatchRepo, verifier publishEligibility) *Service {
	t.Helper()
	calc, err := trust.NewCalculator(trust.DefaultCreditWeights(), trust.DefaultProfileWeights())
	require.NoError(t, err)
	scorer, err := NewScorer(DefaultWeights(), calc)
	require.NoError(t, err)
	svc := NewService(repo, verifier, scorer, time.Second, logx.Nop(), nil)
	svc.now = func() time.Time { return basePickup.Add(-48 * time.Hour) }
	return svc
}

func TestMatch_RanksEligibleCandidates(t *testing.T) {
	t.Parallel()

	sh := testShipment()
	good := testOffer()
	overweight := testOffer()
	overweight.ID = "veh-2"
	overweight.MaxWeightKg = 100
	unverified := testOffer()
	unverified.ID = "veh-3"
	unverified.CarrierID = "carrier-x"

	accounts := map[string]*domain.Account{
		"carrier-1": {ID: "carrier-1", Role: domain.RoleCarrier, Active: true,
			RegisteredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		"carrier-x": {ID: "carrier-x", Role: domain.RoleCarrier, Active: true,
			RegisteredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	repo := defaultRepo(sh, []domain.VehicleOffer{good, overweight, unverified}, accounts)
	svc := newMatchService(t, repo, stubVerifier{eligible: map[string]bool{"carrier-1": true}})

	res, err := svc.Match(context.Background(), sh.ID, Options{})
	require.NoError(t, err)
	require.Len(t, res.Candidates, 1, "overweight and unverified candidates are dropped silently")
	require.Equal(t, "veh-1", res.Candidates[0].VehicleID)
	require.Equal(t, 1, res.Insights.TotalMatches)
	require.Equal(t, float64(res.Candidates[0].Score), res.Insights.AverageScore)
}

func TestMatch_EmptyPoolIsEmptyResult(t *testing.T) {
	t.Parallel()

	sh := testShipment()
	repo := defaultRepo(sh, nil, nil)
	svc := newMatchService(t, repo, stubVerifier{})

	res, err := svc.Match(context.Background(), sh.ID, Options{TopN: 5})
	require.NoError(t, err)
	require.Empty(t, res.Candidates)
	require.Equal(t, 0, res.Insights.TotalMatches)
}

func TestMatch_ShipmentNotFound(t *testing.T) {
	t.Parallel()

	repo := defaultRepo(nil, nil, nil)
	svc := newMatchService(t, repo, stubVerifier{})

	_, err := svc.Match(context.Background(), "missing", Options{})
	require.ErrorIs(t, err, apperr.NotFound)
}

func TestMatch_InvalidShipmentAborts(t *testing.T) {
	t.Parallel()

	sh := testShipment()
	sh.BudgetCents = 0
	repo := defaultRepo(sh, []domain.VehicleOffer{testOffer()}, nil)
	svc := newMatchService(t, repo, stubVerifier{})

	_, err := svc.Match(context.Background(), sh.ID, Options{})
	require.ErrorIs(t, err, apperr.Invalid)
}

func TestMatch_TerminalShipmentRejected(t *testing.T) {
	t.Parallel()

	sh := testShipment()
	sh.Status = domain.ShipmentCancelled
	repo := defaultRepo(sh, nil, nil)
	svc := newMatchService(t, repo, stubVerifier{})

	_, err := svc.Match(context.Background(), sh.ID, Options{})
	require.ErrorIs(t, err, apperr.Invalid)
}

func TestMatch_UnknownRegion(t *testing.T) {
	t.Parallel()

	sh := testShipment()
	sh.PickupRegion = "atlantis"
	repo := defaultRepo(sh, nil, nil)
	svc := newMatchService(t, repo, stubVerifier{})

	_, err := svc.Match(context.Background(), sh.ID, Options{})
	require.ErrorIs(t, err, apperr.NotFound)
}

func TestMatch_RepoErrorAbortsWholeQuery(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("db down")
	sh := testShipment()
	repo := defaultRepo(sh, nil, nil)
	repo.listFn = func(ctx context.Context) ([]domain.VehicleOffer, error) {
		return nil, wantErr
	}
	svc := newMatchService(t, repo, stubVerifier{})

	_, err := svc.Match(context.Background(), sh.ID, Options{})
	require.ErrorIs(t, err, wantErr)
}

func TestMatch_NegativeTopNRejected(t *testing.T) {
	t.Parallel()

	svc := newMatchService(t, defaultRepo(nil, nil, nil), stubVerifier{})
	_, err := svc.Match(context.Background(), "sh-1", Options{TopN: -1})
	require.ErrorIs(t, err, apperr.Invalid)
}

func TestMatch_VanishedCarrierIsFiltered(t *testing.T) {
	t.Parallel()

	sh := testShipment()
	orphan := testOffer()
	orphan.CarrierID = "ghost"
	repo := defaultRepo(sh, []domain.VehicleOffer{orphan}, map[string]*domain.Account{})
	svc := newMatchService(t, repo, stubVerifier{eligible: map[string]bool{"ghost": true}})

	res, err := svc.Match(context.Background(), sh.ID, Options{})
	require.NoError(t, err)
	require.Empty(t, res.Candidates)
}
