package fleet

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hireflow/hireflow/internal/db"
	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNotFound is returned when an owner, driver or vehicle does not
	// exist within the caller's scope.
	ErrNotFound = errors.New("record not found")

	// ErrOwnerExists is returned when creating a global owner whose NIC is
	// already registered. The owner should be attached to the company
	// instead of recreated.
	ErrOwnerExists = errors.New("owner with this NIC already exists in the system")

	// ErrMembershipExists is returned when attaching an owner already
	// attached to the organization.
	ErrMembershipExists = errors.New("owner already added to your company")

	// ErrDriverInactive is returned when a vehicle names an inactive or
	// unknown driver.
	ErrDriverInactive = errors.New("driver not found or inactive")

	// ErrDuplicateVehicle is returned when a vehicle number is already
	// registered in the organization.
	ErrDuplicateVehicle = errors.New("vehicle number already exists in your organization")

	// ErrVehicleBusy blocks deletion of a vehicle referenced by a hire
	// that has not finished.
	ErrVehicleBusy = errors.New("vehicle has active hires and cannot be deleted")

	// ErrValidation is returned for missing required input.
	ErrValidation = errors.New("required fields are missing")
)

// Service resolves the owner -> driver -> vehicle hierarchy and manages
// the fleet directory of one organization.
type Service struct {
	vehicles db.VehicleCollection
	owners   db.OwnerCollection
	drivers  db.DriverCollection
	hires    db.HireCollection
}

// NewService creates a fleet directory service.
func NewService(vehicles db.VehicleCollection, owners db.OwnerCollection, drivers db.DriverCollection, hires db.HireCollection) *Service {
	return &Service{vehicles: vehicles, owners: owners, drivers: drivers, hires: hires}
}

// NormalizeNIC uppercases and trims a NIC. NICs are stored uppercase and
// matched case-insensitively by normalizing on the way in.
func NormalizeNIC(nic string) string {
	return strings.ToUpper(strings.TrimSpace(nic))
}

// CreateOwnerInput carries the fields for a new global owner.
type CreateOwnerInput struct {
	NICNumber      string   `json:"nic_number"`
	FullName       string   `json:"full_name"`
	PhoneNumber    string   `json:"phone_number"`
	WhatsappNumber string   `json:"whatsapp_number"`
	VehicleTypes   []string `json:"vehicle_types"`
	Notes          string   `json:"notes"`
}

// CreateOwner registers a vehicle owner globally and attaches them to the
// caller's organization in one step. The NIC must be new system-wide.
func (s *Service) CreateOwner(ctx context.Context, claims models.Claims, in CreateOwnerInput) (*models.VehicleOwner, *models.CompanyOwner, error) {
	nic := NormalizeNIC(in.NICNumber)
	if nic == "" || in.FullName == "" || in.PhoneNumber == "" {
		return nil, nil, ErrValidation
	}

	_, err := s.owners.FindOwnerByNIC(ctx, nic)
	if err == nil {
		return nil, nil, ErrOwnerExists
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, nil, err
	}

	whatsapp := in.WhatsappNumber
	if whatsapp == "" {
		whatsapp = in.PhoneNumber
	}

	owner, err := s.owners.InsertOwner(ctx, models.VehicleOwner{
		NICNumber:               nic,
		FullName:                in.FullName,
		PhoneNumber:             in.PhoneNumber,
		WhatsappNumber:          whatsapp,
		VehicleTypes:            in.VehicleTypes,
		SystemStatus:            models.OwnerActive,
		CreatedByOrganizationID: claims.OrganizationID,
		CreatedByUserID:         claims.UserID,
		Notes:                   in.Notes,
	})
	if err != nil {
		return nil, nil, err
	}

	membership, err := s.owners.InsertCompanyOwner(ctx, models.CompanyOwner{
		OrganizationID: claims.OrganizationID,
		OwnerNIC:       nic,
		Status:         models.OwnerActive,
		AssignedBy:     claims.UserID,
	})
	if err != nil {
		return nil, nil, err
	}
	return owner, membership, nil
}

// AddCompanyOwner attaches an existing global owner to the caller's
// organization.
func (s *Service) AddCompanyOwner(ctx context.Context, claims models.Claims, ownerNIC string) (*models.CompanyOwner, *models.VehicleOwner, error) {
	nic := NormalizeNIC(ownerNIC)
	if nic == "" {
		return nil, nil, ErrValidation
	}

	owner, err := s.owners.FindOwnerByNIC(ctx, nic)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	if _, err := s.owners.FindCompanyOwner(ctx, claims.OrganizationID, nic); err == nil {
		return nil, nil, ErrMembershipExists
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, nil, err
	}

	membership, err := s.owners.InsertCompanyOwner(ctx, models.CompanyOwner{
		OrganizationID: claims.OrganizationID,
		OwnerNIC:       nic,
		Status:         models.OwnerActive,
		AssignedBy:     claims.UserID,
	})
	if err != nil {
		return nil, nil, err
	}
	return membership, owner, nil
}

// SetCompanyOwnerStatus toggles a membership's status. It does not touch
// the owner's global status.
func (s *Service) SetCompanyOwnerStatus(ctx context.Context, claims models.Claims, id string, status models.OwnerStatus) (*models.CompanyOwner, error) {
	if status != models.OwnerActive && status != models.OwnerInactive {
		return nil, ErrValidation
	}
	membership, err := s.owners.UpdateCompanyOwnerStatus(ctx, id, claims.OrganizationID, status)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return membership, nil
}

// SearchOwner finds a global owner by NIC.
func (s *Service) SearchOwner(ctx context.Context, nic string) (*models.VehicleOwner, error) {
	owner, err := s.owners.FindOwnerByNIC(ctx, NormalizeNIC(nic))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return owner, nil
}

// CompanyOwnerView joins a membership with the global owner record.
type CompanyOwnerView struct {
	Membership models.CompanyOwner  `json:"membership"`
	Owner      *models.VehicleOwner `json:"owner"`
}

// ListCompanyOwners lists the organization's owner memberships with the
// global owner details attached.
func (s *Service) ListCompanyOwners(ctx context.Context, claims models.Claims) ([]CompanyOwnerView, error) {
	memberships, err := s.owners.FindCompanyOwners(ctx, claims.OrganizationID)
	if err != nil {
		return nil, err
	}

	views := make([]CompanyOwnerView, 0, len(memberships))
	for _, m := range memberships {
		owner, err := s.owners.FindOwnerByNIC(ctx, m.OwnerNIC)
		if err != nil && !errors.Is(err, db.ErrNotFound) {
			return nil, err
		}
		views = append(views, CompanyOwnerView{Membership: m, Owner: owner})
	}
	return views, nil
}

// CreateDriverInput carries the fields for a new driver.
type CreateDriverInput struct {
	NICNumber      string     `json:"nic_number"`
	OwnerNIC       string     `json:"owner_nic"`
	FullName       string     `json:"full_name"`
	PhoneNumber    string     `json:"phone_number"`
	WhatsappNumber string     `json:"whatsapp_number"`
	LicenseNumber  string     `json:"license_number"`
	LicenseExpiry  *time.Time `json:"license_expiry"`
	Notes          string     `json:"notes"`
}

// CreateDriver adds a driver under an owner attached to the caller's
// organization.
func (s *Service) CreateDriver(ctx context.Context, claims models.Claims, in CreateDriverInput) (*models.Driver, error) {
	nic := NormalizeNIC(in.NICNumber)
	ownerNIC := NormalizeNIC(in.OwnerNIC)
	if nic == "" || ownerNIC == "" || in.FullName == "" || in.PhoneNumber == "" {
		return nil, ErrValidation
	}

	if _, err := s.owners.FindCompanyOwner(ctx, claims.OrganizationID, ownerNIC); err != nil {
		return nil, mapNotFound(err)
	}

	whatsapp := in.WhatsappNumber
	if whatsapp == "" {
		whatsapp = in.PhoneNumber
	}

	return s.drivers.InsertDriver(ctx, models.Driver{
		OrganizationID: claims.OrganizationID,
		NICNumber:      nic,
		OwnerNIC:       ownerNIC,
		FullName:       in.FullName,
		PhoneNumber:    in.PhoneNumber,
		WhatsappNumber: whatsapp,
		LicenseNumber:  in.LicenseNumber,
		LicenseExpiry:  in.LicenseExpiry,
		Status:         models.OwnerActive,
		CreatedBy:      claims.UserID,
		Notes:          in.Notes,
	})
}

// ListDrivers lists the organization's drivers, optionally narrowed to
// one owner.
func (s *Service) ListDrivers(ctx context.Context, claims models.Claims, ownerNIC string) ([]models.Driver, error) {
	filter := bson.M{"organization_id": claims.OrganizationID}
	if ownerNIC != "" {
		filter["owner_nic"] = NormalizeNIC(ownerNIC)
	}
	return s.drivers.FindDrivers(ctx, filter)
}

// ResetResult reports what an admin reset removed.
type ResetResult struct {
	DeletedHires    int64  `json:"deleted_hires"`
	DeletedVehicles int64  `json:"deleted_vehicles"`
	OrganizationID  string `json:"organization_id"`
}

// Reset deletes every hire and vehicle of one organization. Users, owner
// records and memberships are kept.
func (s *Service) Reset(ctx context.Context, organizationID string) (*ResetResult, error) {
	hires, err := s.hires.DeleteHiresByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.DeleteVehiclesByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return &ResetResult{DeletedHires: hires, DeletedVehicles: vehicles, OrganizationID: organizationID}, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
