package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HireStatus is the lifecycle state of a hire.
type HireStatus string

const (
	// HireStatusActive is the unassigned state: newly created or returned
	// by a driver. Legacy data may carry "pending" for the same state; the
	// two are treated as one state everywhere.
	HireStatusActive     HireStatus = "active"
	HireStatusPending    HireStatus = "pending"
	HireStatusAccepted   HireStatus = "accepted"
	HireStatusInProgress HireStatus = "in_progress"
	HireStatusCompleted  HireStatus = "completed"
	HireStatusCancelled  HireStatus = "cancelled"
)

// AssignmentType controls how a hire is bound to a vehicle.
type AssignmentType string

const (
	// AssignmentAuto leaves the hire unbound and visible to every driver
	// in the organization.
	AssignmentAuto AssignmentType = "auto"
	// AssignmentManual binds the hire to one specific vehicle.
	AssignmentManual AssignmentType = "manual"
)

// TripProgress tracks the execution of an accepted hire. It is cleared
// whenever the hire is unassigned again.
type TripProgress struct {
	AcceptedAt  *time.Time `bson:"accepted_at,omitempty" json:"accepted_at,omitempty"`
	StartedAt   *time.Time `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	AcceptedBy  string     `bson:"accepted_by,omitempty" json:"accepted_by,omitempty"`
	DriverNotes string     `bson:"driver_notes,omitempty" json:"driver_notes,omitempty"`
}

// Commission is the three-way split of the hire price, computed once at
// acceptance. Amounts are in the organization's currency, no unit attached.
type Commission struct {
	ManagerCommission float64 `bson:"manager_commission" json:"manager_commission"`
	SystemCommission  float64 `bson:"system_commission" json:"system_commission"`
	DriverEarnings    float64 `bson:"driver_earnings" json:"driver_earnings"`
}

// Hire represents a single passenger transport booking.
type Hire struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HireID         string             `bson:"hire_id" json:"hire_id"`
	OrganizationID string             `bson:"organization_id" json:"organization_id"`

	PassengerName       string    `bson:"passenger_name" json:"passenger_name"`
	PickupLocation      string    `bson:"pickup_location" json:"pickup_location"`
	DropLocation        string    `bson:"drop_location" json:"drop_location"`
	DateTime            time.Time `bson:"date_time" json:"date_time"`
	NumberOfPassengers  int       `bson:"number_of_passengers" json:"number_of_passengers"`
	HirePrice           float64   `bson:"hire_price" json:"hire_price"`
	SpecialRequirements string    `bson:"special_requirements" json:"special_requirements"`

	// VehicleType is a pre-assignment filter only; it has no meaning once
	// a vehicle is bound.
	VehicleType    string              `bson:"vehicle_type,omitempty" json:"vehicle_type,omitempty"`
	AssignmentType AssignmentType      `bson:"assignment_type" json:"assignment_type"`
	VehicleID      *primitive.ObjectID `bson:"vehicle_id,omitempty" json:"vehicle_id,omitempty"`

	Status             HireStatus    `bson:"status" json:"status"`
	TripProgress       *TripProgress `bson:"trip_progress,omitempty" json:"trip_progress,omitempty"`
	Commission         *Commission   `bson:"commission,omitempty" json:"commission,omitempty"`
	CancellationReason string        `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`

	CreatedBy string    `bson:"created_by" json:"created_by"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsUnassigned reports whether the hire is in the unassigned state,
// accepting both the canonical and the legacy spelling.
func (h *Hire) IsUnassigned() bool {
	return h.Status == HireStatusActive || h.Status == HireStatusPending
}

// UnassignedStatuses is the set of spellings of the unassigned state as
// stored in existing data.
func UnassignedStatuses() []HireStatus {
	return []HireStatus{HireStatusActive, HireStatusPending}
}

// LiveStatuses is the set of statuses in which a hire occupies its
// scheduled time slot for conflict detection.
func LiveStatuses() []HireStatus {
	return []HireStatus{HireStatusActive, HireStatusPending, HireStatusAccepted, HireStatusInProgress}
}
