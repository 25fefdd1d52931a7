package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleStatus is the administrative status of a fleet vehicle.
//
// Hire transitions never write this field: a vehicle stays "available"
// across accept/start/complete/cancel so it can serve several hires at
// different times in the same day. Conflict avoidance is handled by the
// time-window filter, not by vehicle status. Only explicit administrative
// action moves a vehicle to maintenance or inactive.
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleOnHire      VehicleStatus = "on_hire"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleInactive    VehicleStatus = "inactive"
)

// Vehicle types accepted by the system.
const (
	VehicleTypeCar   = "Car"
	VehicleTypeVan   = "Van"
	VehicleTypeSUV   = "SUV"
	VehicleTypeBus   = "Bus"
	VehicleTypeOther = "Other"
)

// IsValidVehicleType checks a vehicle type against the accepted set.
func IsValidVehicleType(t string) bool {
	switch t {
	case VehicleTypeCar, VehicleTypeVan, VehicleTypeSUV, VehicleTypeBus, VehicleTypeOther:
		return true
	default:
		return false
	}
}

// ContactSnapshot holds owner or driver contact fields denormalized onto
// a vehicle at creation time. Snapshots are a display cache with no
// freshness guarantee; they are only updated by an explicit refresh.
type ContactSnapshot struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Whatsapp string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
}

// Vehicle represents a fleet asset owned by a vehicle owner and optionally
// operated by a named driver.
type Vehicle struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationID string             `bson:"organization_id" json:"organization_id"`

	OwnerNIC  string `bson:"owner_nic" json:"owner_nic"`
	DriverNIC string `bson:"driver_nic,omitempty" json:"driver_nic,omitempty"`

	VehicleNumber string        `bson:"vehicle_number" json:"vehicle_number"`
	VehicleType   string        `bson:"vehicle_type" json:"vehicle_type"`
	Capacity      int           `bson:"capacity" json:"capacity"`
	Status        VehicleStatus `bson:"status" json:"status"`

	Owner  ContactSnapshot `bson:"owner" json:"owner"`
	Driver ContactSnapshot `bson:"driver" json:"driver"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
