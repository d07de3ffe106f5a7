package domain

import "time"

type (
	// ShipmentStatus represents the lifecycle status of a shipment request.
	ShipmentStatus string
	// Urgency represents the urgency tier of a shipment request.
	Urgency string
)

// List of shipment statuses
const (
	ShipmentOpen      ShipmentStatus = "OPEN"
	ShipmentMatched   ShipmentStatus = "MATCHED"
	ShipmentInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentDelivered ShipmentStatus = "DELIVERED"
	ShipmentCancelled ShipmentStatus = "CANCELLED"
)

// List of urgency tiers
const (
	UrgencyUrgent Urgency = "urgent"
	UrgencyHigh   Urgency = "high"
	UrgencyNormal Urgency = "normal"
	UrgencyLow    Urgency = "low"
)

// VehicleTypeAny is the explicit wildcard accepting any vehicle type.
const VehicleTypeAny = "any"

var allowedShipmentStatuses = [...]ShipmentStatus{
	ShipmentOpen, ShipmentMatched, ShipmentInTransit, ShipmentDelivered, ShipmentCancelled,
}

var allowedUrgencies = [...]Urgency{
	UrgencyUrgent, UrgencyHigh, UrgencyNormal, UrgencyLow,
}

// Valid checks if the ShipmentStatus is valid
func (s ShipmentStatus) Valid() bool {
	for _, v := range allowedShipmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s ShipmentStatus) Terminal() bool {
	return s == ShipmentDelivered || s == ShipmentCancelled
}

// CanTransitionTo reports whether the status may move to next.
// The forward chain is OPEN → MATCHED → IN_TRANSIT → DELIVERED;
// CANCELLED is reachable from any non-terminal state.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == ShipmentCancelled {
		return true
	}
	switch s {
	case ShipmentOpen:
		return next == ShipmentMatched
	case ShipmentMatched:
		return next == ShipmentInTransit
	case ShipmentInTransit:
		return next == ShipmentDelivered
	default:
		return false
	}
}

// Valid checks if the Urgency is valid
func (u Urgency) Valid() bool {
	for _, v := range allowedUrgencies {
		if u == v {
			return true
		}
	}
	return false
}

// MaxLeadTime returns the maximum acceptable lead time for the urgency tier.
func (u Urgency) MaxLeadTime() time.Duration {
	switch u {
	case UrgencyUrgent:
		return 24 * time.Hour
	case UrgencyHigh:
		return 72 * time.Hour
	case UrgencyLow:
		return 336 * time.Hour
	default:
		return 168 * time.Hour
	}
}

// ShipmentRequest is a shipper's posted transport job. Immutable once matching
// has produced offers bound to it, except for status transitions.
type ShipmentRequest struct {
	ID              string
	ShipperID       string
	CargoWeightKg   int64
	VehicleType     string // required vehicle-type tag, or VehicleTypeAny
	PickupRegion    string
	DeliveryRegion  string
	PickupAt        time.Time
	DeliverBy       time.Time
	BudgetCents     int64
	Urgency         Urgency
	RequirementTags []string
	Status          ShipmentStatus
	CreatedAt       time.Time
}
