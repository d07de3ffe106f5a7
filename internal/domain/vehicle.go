package domain

import "time"

// OfferStatus represents the availability status of a vehicle offer.
type OfferStatus string

// List of offer statuses
const (
	OfferAvailable OfferStatus = "AVAILABLE"
	OfferBooked    OfferStatus = "BOOKED"
	OfferExpired   OfferStatus = "EXPIRED"
	OfferWithdrawn OfferStatus = "WITHDRAWN"
)

var allowedOfferStatuses = [...]OfferStatus{
	OfferAvailable, OfferBooked, OfferExpired, OfferWithdrawn,
}

// Valid checks if the OfferStatus is valid
func (s OfferStatus) Valid() bool {
	for _, v := range allowedOfferStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// VehicleOffer is a carrier's posted available vehicle and capacity for a
// time window.
type VehicleOffer struct {
	ID              string
	CarrierID       string
	VehicleType     string
	MaxWeightKg     int64
	Regions         []string // serviceable region codes
	AvailableFrom   time.Time
	AvailableUntil  time.Time
	PricePerKmCents int64
	FeatureTags     []string // e.g. refrigeration, lift-gate
	Status          OfferStatus
}

// ServesRegion reports whether the offer covers the given region code.
func (v *VehicleOffer) ServesRegion(region string) bool {
	for _, r := range v.Regions {
		if r == region {
			return true
		}
	}
	return false
}

// HasFeature reports whether the offer carries the given feature tag.
func (v *VehicleOffer) HasFeature(tag string) bool {
	for _, t := range v.FeatureTags {
		if t == tag {
			return true
		}
	}
	return false
}

// CoversWindow reports whether the availability window fully contains
// [from, until].
func (v *VehicleOffer) CoversWindow(from, until time.Time) bool {
	return !v.AvailableFrom.After(from) && !v.AvailableUntil.Before(until)
}
