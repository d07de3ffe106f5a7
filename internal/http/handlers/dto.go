package handlers

import (
	"time"

	"service-freight-match/internal/domain"
)

type matchCandidateDTO struct {
	VehicleID          string             `json:"vehicle_id"`
	CarrierID          string             `json:"carrier_id"`
	Score              int                `json:"score"`
	TrustScore         int                `json:"trust_score"`
	EstimatedCostCents int64              `json:"estimated_cost_cents"`
	Breakdown          map[string]float64 `json:"breakdown"`
	Rationale          string             `json:"rationale"`
}

type matchInsightsDTO struct {
	TotalMatches int      `json:"total_matches"`
	AverageScore float64  `json:"average_score"`
	TopTags      []string `json:"top_tags"`
}

type matchResponse struct {
	ShipmentID string              `json:"shipment_id"`
	Candidates []matchCandidateDTO `json:"candidates"`
	Insights   matchInsightsDTO    `json:"insights"`
}

type trustScoresResponse struct {
	AccountID    string             `json:"account_id"`
	CreditScore  int                `json:"credit_score"`
	ProfileScore int                `json:"profile_score"`
	Breakdown    map[string]float64 `json:"breakdown"`
}

type documentDTO struct {
	ID           string                `json:"id"`
	AccountID    string                `json:"account_id"`
	Kind         domain.DocumentKind   `json:"kind"`
	Status       domain.DocumentStatus `json:"status"`
	SubmittedAt  time.Time             `json:"submitted_at"`
	ReviewerID   string                `json:"reviewer_id,omitempty"`
	RejectReason string                `json:"reject_reason,omitempty"`
	ReviewedAt   *time.Time            `json:"reviewed_at,omitempty"`
}

type submitDocumentRequest struct {
	Kind domain.DocumentKind `json:"kind"`
}

type reviewDocumentRequest struct {
	Decision   domain.DocumentStatus `json:"decision"`
	ReviewerID string                `json:"reviewer_id"`
	Reason     string                `json:"reason,omitempty"`
}

type publishEligibleResponse struct {
	AccountID string `json:"account_id"`
	Eligible  bool   `json:"eligible"`
}

type submitRatingRequest struct {
	RaterID string `json:"rater_id"`
	RatedID string `json:"rated_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

type ratingDTO struct {
	ID        string    `json:"id"`
	RaterID   string    `json:"rater_id"`
	RatedID   string    `json:"rated_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
