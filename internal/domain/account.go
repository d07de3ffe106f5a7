package domain

import "time"

// AccountRole represents the marketplace role of an account.
type AccountRole string

// List of possible account roles
const (
	RoleShipper AccountRole = "SHIPPER"
	RoleCarrier AccountRole = "CARRIER"
)

var allowedRoles = [...]AccountRole{RoleShipper, RoleCarrier}

// Valid checks if the AccountRole is valid
func (r AccountRole) Valid() bool {
	for _, v := range allowedRoles {
		if r == v {
			return true
		}
	}
	return false
}

// Account represents a marketplace participant. Accounts are never deleted,
// only deactivated; trust inputs are mutated by completed transactions and
// peer ratings.
type Account struct {
	ID            string
	Role          AccountRole
	Active        bool
	SpecialtyTags []string

	// Trust-score inputs: counters and running sums, never recomputed
	// from full history on read.
	PaymentScore       float64 // already normalized 0-100 by the payments pipeline
	CompletedShipments int64
	TotalShipments     int64
	TransactionVolume  int64 // completed transactions, all roles
	RatingSum          int64
	RatingCount        int64
	AvgReplyMinutes    float64
	RegisteredAt       time.Time
}

// HasTag reports whether the account carries the given specialty tag.
func (a *Account) HasTag(tag string) bool {
	for _, t := range a.SpecialtyTags {
		if t == tag {
			return true
		}
	}
	return false
}

// AverageRating returns the running peer rating average, 0 if unrated.
func (a *Account) AverageRating() float64 {
	if a.RatingCount == 0 {
		return 0
	}
	return float64(a.RatingSum) / float64(a.RatingCount)
}

// AgeMonths returns the account age in whole months at the given instant.
func (a *Account) AgeMonths(now time.Time) int {
	if now.Before(a.RegisteredAt) {
		return 0
	}
	months := 0
	for t := a.RegisteredAt.AddDate(0, 1, 0); !t.After(now); t = t.AddDate(0, 1, 0) {
		months++
	}
	return months
}
