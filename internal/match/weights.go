package match

import (
	"fmt"
	"math"

	"service-freight-match/internal/apperr"
)

// Factor names used in match score breakdowns.
const (
	FactorCapability     = "capability_fit"
	FactorTrust          = "trust_score"
	FactorResponsiveness = "responsiveness"
	FactorCostEfficiency = "cost_efficiency"
	FactorUrgency        = "urgency_alignment"
)

// Weights is a validated weight table over the match sub-factors.
// Weights must be in [0,1] and sum to exactly 1.0.
type Weights struct {
	Capability     float64
	Trust          float64
	Responsiveness float64
	CostEfficiency float64
	Urgency        float64
}

const weightSumTolerance = 1e-9

// Validate rejects malformed weight tables before any score is computed.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		FactorCapability:     w.Capability,
		FactorTrust:          w.Trust,
		FactorResponsiveness: w.Responsiveness,
		FactorCostEfficiency: w.CostEfficiency,
		FactorUrgency:        w.Urgency,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: weight %s=%v out of [0,1]", apperr.Config, name, v)
		}
	}
	sum := w.Capability + w.Trust + w.Responsiveness + w.CostEfficiency + w.Urgency
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: match weights sum to %v, want 1.0", apperr.Config, sum)
	}
	return nil
}

// DefaultWeights is the production match weight table.
func DefaultWeights() Weights {
	return Weights{
		Capability:     0.30,
		Trust:          0.25,
		Responsiveness: 0.15,
		CostEfficiency: 0.15,
		Urgency:        0.15,
	}
}
