package handlers

import (
	"context"

	"service-freight-match/internal/domain"
	"service-freight-match/internal/match"
	"service-freight-match/internal/rating"
	"service-freight-match/internal/trust"
	"service-freight-match/internal/verification"
)

type matchUsecase interface {
	Match(ctx context.Context, shipmentID string, opts match.Options) (*match.Result, error)
}

// NewMatchUsecase wires a match Service into a matchUsecase.
func NewMatchUsecase(svc *match.Service) matchUsecase {
	return svc
}

type trustUsecase interface {
	Scores(ctx context.Context, accountID string) (*trust.Scores, error)
}

// NewTrustUsecase wires a trust Service into a trustUsecase.
func NewTrustUsecase(svc *trust.Service) trustUsecase {
	return svc
}

type verificationUsecase interface {
	Submit(ctx context.Context, accountID string, kind domain.DocumentKind) (*domain.VerificationDocument, error)
	Review(ctx context.Context, documentID string, decision domain.DocumentStatus, reviewerID, reason string) (*domain.VerificationDocument, error)
	ListDocuments(ctx context.Context, accountID string) ([]domain.VerificationDocument, error)
	IsPublishEligible(ctx context.Context, accountID string) (bool, error)
}

// NewVerificationUsecase wires a verification Service into a verificationUsecase.
func NewVerificationUsecase(svc *verification.Service) verificationUsecase {
	return svc
}

type ratingUsecase interface {
	Record(ctx context.Context, raterID, ratedID string, score int, comment string) (*domain.Rating, error)
}

// NewRatingUsecase wires a rating Service into a ratingUsecase.
func NewRatingUsecase(svc *rating.Service) ratingUsecase {
	return svc
}
