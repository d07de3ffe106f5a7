package match

import (
	"math"
	"sort"
	"time"

	"service-freight-match/internal/domain"
	"service-freight-match/internal/trust"
)

// Scorer computes a 0-100 match score for an eligible (shipment, vehicle)
// pair from weighted factors. It is pure: trust and verification state come
// from the snapshots the caller supplies at query time.
type Scorer struct {
	weights Weights
	calc    *trust.Calculator
}

// NewScorer validates the weight table and returns a Scorer.
func NewScorer(w Weights, calc *trust.Calculator) (*Scorer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: w, calc: calc}, nil
}

// Score computes the composite match score for one candidate.
// distanceKm is the straight-line pickup-to-delivery estimate; now anchors
// the urgency lead-time computation.
func (s *Scorer) Score(sh *domain.ShipmentRequest, v *domain.VehicleOffer, carrier *domain.Account, distanceKm float64, now time.Time) domain.MatchResult {
	trustScore := s.calc.ProfileScore(carrier).Score
	costCents := estimatedCost(v.PricePerKmCents, distanceKm)

	breakdown := domain.FactorBreakdown{
		FactorCapability:     capabilityScore(sh, v, carrier),
		FactorTrust:          float64(trustScore),
		FactorResponsiveness: trust.ResponseScore(carrier.AvgReplyMinutes),
		FactorCostEfficiency: costScore(costCents, sh.BudgetCents),
		FactorUrgency:        urgencyScore(sh.Urgency, v.AvailableFrom, now),
	}

	composite := breakdown[FactorCapability]*s.weights.Capability +
		breakdown[FactorTrust]*s.weights.Trust +
		breakdown[FactorResponsiveness]*s.weights.Responsiveness +
		breakdown[FactorCostEfficiency]*s.weights.CostEfficiency +
		breakdown[FactorUrgency]*s.weights.Urgency

	return domain.MatchResult{
		VehicleID:          v.ID,
		CarrierID:          v.CarrierID,
		Score:              int(math.Round(clamp(composite, 0, 100))),
		TrustScore:         trustScore,
		EstimatedCostCents: costCents,
		Breakdown:          breakdown,
		Rationale:          s.rationale(breakdown),
	}
}

// capabilityScore is the proportion of the shipment's special-requirement
// tags present in the candidate's feature or specialty tags; 100 when
// nothing is required.
func capabilityScore(sh *domain.ShipmentRequest, v *domain.VehicleOffer, carrier *domain.Account) float64 {
	if len(sh.RequirementTags) == 0 {
		return 100
	}
	met := 0
	for _, tag := range sh.RequirementTags {
		if v.HasFeature(tag) || carrier.HasTag(tag) {
			met++
		}
	}
	return 100 * float64(met) / float64(len(sh.RequirementTags))
}

// costScore maps the cost-to-budget ratio to 0-100; candidates at or under
// budget score higher: 1 − clamp((cost−budget)/budget, −1, 1), scaled.
func costScore(costCents, budgetCents int64) float64 {
	if budgetCents <= 0 {
		return 0
	}
	over := float64(costCents-budgetCents) / float64(budgetCents)
	return (1 - clamp(over, -1, 1)) * 50
}

// urgencyScore is 100 while the candidate's availability starts within the
// urgency tier's maximum lead time, decaying linearly to 0 at twice that.
func urgencyScore(u domain.Urgency, availableFrom time.Time, now time.Time) float64 {
	maxLead := u.MaxLeadTime()
	lead := availableFrom.Sub(now)
	if lead <= maxLead {
		return 100
	}
	if lead >= 2*maxLead {
		return 0
	}
	return 100 * float64(2*maxLead-lead) / float64(maxLead)
}

func estimatedCost(pricePerKmCents int64, distanceKm float64) int64 {
	return int64(math.Round(float64(pricePerKmCents) * distanceKm))
}

var rationaleNames = map[string]string{
	FactorCapability:     "full capability match",
	FactorTrust:          "high trust score",
	FactorResponsiveness: "fast response times",
	FactorCostEfficiency: "good cost efficiency",
	FactorUrgency:        "tight urgency alignment",
}

// rationale names the top two factors by weighted contribution,
// e.g. "high trust score and full capability match".
func (s *Scorer) rationale(b domain.FactorBreakdown) string {
	contribution := map[string]float64{
		FactorCapability:     b[FactorCapability] * s.weights.Capability,
		FactorTrust:          b[FactorTrust] * s.weights.Trust,
		FactorResponsiveness: b[FactorResponsiveness] * s.weights.Responsiveness,
		FactorCostEfficiency: b[FactorCostEfficiency] * s.weights.CostEfficiency,
		FactorUrgency:        b[FactorUrgency] * s.weights.Urgency,
	}
	factors := make([]string, 0, len(contribution))
	for f := range contribution {
		factors = append(factors, f)
	}
	sort.Slice(factors, func(i, j int) bool {
		if contribution[factors[i]] != contribution[factors[j]] {
			return contribution[factors[i]] > contribution[factors[j]]
		}
		return factors[i] < factors[j]
	})
	return rationaleNames[factors[0]] + " and " + rationaleNames[factors[1]]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
