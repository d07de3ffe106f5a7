package handlers

import (
	"service-freight-match/internal/domain"
	"service-freight-match/internal/match"
)

func matchResultToResponse(shipmentID string, res *match.Result) matchResponse {
	candidates := make([]matchCandidateDTO, 0, len(res.Candidates))
	for _, c := range res.Candidates {
		candidates = append(candidates, matchCandidateDTO{
			VehicleID:          c.VehicleID,
			CarrierID:          c.CarrierID,
			Score:              c.Score,
			TrustScore:         c.TrustScore,
			EstimatedCostCents: c.EstimatedCostCents,
			Breakdown:          c.Breakdown,
			Rationale:          c.Rationale,
		})
	}
	return matchResponse{
		ShipmentID: shipmentID,
		Candidates: candidates,
		Insights: matchInsightsDTO{
			TotalMatches: res.Insights.TotalMatches,
			AverageScore: res.Insights.AverageScore,
			TopTags:      res.Insights.TopTags,
		},
	}
}

func documentToDTO(d *domain.VerificationDocument) documentDTO {
	return documentDTO{
		ID:           d.ID,
		AccountID:    d.AccountID,
		Kind:         d.Kind,
		Status:       d.Status,
		SubmittedAt:  d.SubmittedAt,
		ReviewerID:   d.ReviewerID,
		RejectReason: d.RejectReason,
		ReviewedAt:   d.ReviewedAt,
	}
}

func ratingToDTO(r *domain.Rating) ratingDTO {
	return ratingDTO{
		ID:        r.ID,
		RaterID:   r.RaterID,
		RatedID:   r.RatedID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
