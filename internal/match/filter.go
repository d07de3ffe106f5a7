package match

import "service-freight-match/internal/domain"

// Eligible reports whether the offer is structurally capable of serving the
// shipment: vehicle type, capacity, regions, and time window. Carrier
// publish eligibility is checked separately since it needs a repository read.
func Eligible(sh *domain.ShipmentRequest, v *domain.VehicleOffer) bool {
	if sh.VehicleType != domain.VehicleTypeAny && v.VehicleType != sh.VehicleType {
		return false
	}
	if v.MaxWeightKg < sh.CargoWeightKg {
		return false
	}
	if !v.ServesRegion(sh.PickupRegion) || !v.ServesRegion(sh.DeliveryRegion) {
		return false
	}
	if !v.CoversWindow(sh.PickupAt, sh.DeliverBy) {
		return false
	}
	return true
}

// FilterEligible narrows the candidate pool to offers that pass every hard
// constraint and whose carrier may publish. Failing candidates are dropped
// silently: filtering is expected, not a fault.
func FilterEligible(sh *domain.ShipmentRequest, pool []domain.VehicleOffer, carrierEligible map[string]bool) []domain.VehicleOffer {
	out := make([]domain.VehicleOffer, 0, len(pool))
	for _, v := range pool {
		if !carrierEligible[v.CarrierID] {
			continue
		}
		if !Eligible(sh, &v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
