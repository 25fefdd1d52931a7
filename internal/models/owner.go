package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerStatus is used for both the global owner record and the
// per-organization membership, which carry independent statuses.
type OwnerStatus string

const (
	OwnerActive   OwnerStatus = "active"
	OwnerInactive OwnerStatus = "inactive"
)

// VehicleOwner is a person who owns vehicles. Owners are unique by NIC
// across the whole system: an owner is created once and then attached to
// any number of organizations through CompanyOwner memberships.
type VehicleOwner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NICNumber string             `bson:"nic_number" json:"nic_number"`

	FullName       string   `bson:"full_name" json:"full_name"`
	PhoneNumber    string   `bson:"phone_number" json:"phone_number"`
	WhatsappNumber string   `bson:"whatsapp_number,omitempty" json:"whatsapp_number,omitempty"`
	VehicleTypes   []string `bson:"vehicle_types,omitempty" json:"vehicle_types,omitempty"`

	// SystemStatus is global; an inactive owner is inactive everywhere
	// regardless of per-organization membership status.
	SystemStatus OwnerStatus `bson:"system_status" json:"system_status"`

	CreatedByOrganizationID string `bson:"created_by_organization_id" json:"created_by_organization_id"`
	CreatedByUserID         string `bson:"created_by_user_id" json:"created_by_user_id"`
	Notes                   string `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CompanyOwner links an organization to a global VehicleOwner by NIC.
// The pair (organization, NIC) is unique. Its status is independent of
// the owner's global SystemStatus.
type CompanyOwner struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationID string             `bson:"organization_id" json:"organization_id"`
	OwnerNIC       string             `bson:"owner_nic" json:"owner_nic"`

	Status     OwnerStatus `bson:"status" json:"status"`
	AssignedAt time.Time   `bson:"assigned_at" json:"assigned_at"`
	AssignedBy string      `bson:"assigned_by" json:"assigned_by"`
	Notes      string      `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
