package domain

// FactorBreakdown carries the per-factor sub-scores behind a composite score.
// Keys are factor names, values are normalized 0-100 scores.
type FactorBreakdown map[string]float64

// MatchResult is the engine's scored verdict for one (shipment, vehicle)
// pair. Ephemeral: constructed per query, never persisted, and trust/
// verification state is read at query time rather than cached here.
type MatchResult struct {
	VehicleID          string
	CarrierID          string
	Score              int // composite 0-100
	TrustScore         int
	EstimatedCostCents int64
	Breakdown          FactorBreakdown
	Rationale          string
}

// MatchInsights aggregates a ranked result list.
type MatchInsights struct {
	TotalMatches int
	AverageScore float64
	TopTags      []string // union of top specialty/feature tags across returned candidates
}
