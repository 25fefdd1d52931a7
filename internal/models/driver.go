package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Driver belongs to one organization and one vehicle owner. Drivers are
// keyed by their own NIC within an organization.
type Driver struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationID string             `bson:"organization_id" json:"organization_id"`

	NICNumber string `bson:"nic_number" json:"nic_number"`
	OwnerNIC  string `bson:"owner_nic" json:"owner_nic"`

	FullName       string `bson:"full_name" json:"full_name"`
	PhoneNumber    string `bson:"phone_number" json:"phone_number"`
	WhatsappNumber string `bson:"whatsapp_number,omitempty" json:"whatsapp_number,omitempty"`

	LicenseNumber string     `bson:"license_number,omitempty" json:"license_number,omitempty"`
	LicenseExpiry *time.Time `bson:"license_expiry,omitempty" json:"license_expiry,omitempty"`

	Status OwnerStatus `bson:"status" json:"status"`

	CreatedBy string `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
