package fleet

import (
	"context"
	"errors"
	"strings"

	"github.com/hireflow/hireflow/internal/db"
	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateVehicleInput carries the fields for a new vehicle.
type CreateVehicleInput struct {
	OwnerNIC      string `json:"owner_nic"`
	DriverNIC     string `json:"driver_nic"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleType   string `json:"vehicle_type"`
	Capacity      int    `json:"capacity"`
}

// CreateVehicle registers a vehicle after verifying its owner belongs to
// the organization and its driver, if named, is active. Owner and driver
// contact details are snapshotted onto the vehicle for fast listing; the
// snapshots are not kept in sync with later edits (see RefreshSnapshot).
func (s *Service) CreateVehicle(ctx context.Context, claims models.Claims, in CreateVehicleInput) (*models.Vehicle, error) {
	ownerNIC := NormalizeNIC(in.OwnerNIC)
	number := strings.ToUpper(strings.TrimSpace(in.VehicleNumber))
	if ownerNIC == "" || number == "" || in.VehicleType == "" || in.Capacity < 1 {
		return nil, ErrValidation
	}
	if !models.IsValidVehicleType(in.VehicleType) {
		return nil, ErrValidation
	}

	if _, err := s.owners.FindCompanyOwner(ctx, claims.OrganizationID, ownerNIC); err != nil {
		return nil, mapNotFound(err)
	}
	owner, err := s.owners.FindOwnerByNIC(ctx, ownerNIC)
	if err != nil {
		return nil, mapNotFound(err)
	}

	vehicle := models.Vehicle{
		OrganizationID: claims.OrganizationID,
		OwnerNIC:       ownerNIC,
		VehicleNumber:  number,
		VehicleType:    in.VehicleType,
		Capacity:       in.Capacity,
		Status:         models.VehicleAvailable,
		Owner: models.ContactSnapshot{
			Name:     owner.FullName,
			Phone:    owner.PhoneNumber,
			Whatsapp: owner.WhatsappNumber,
		},
	}

	if in.DriverNIC != "" {
		driverNIC := NormalizeNIC(in.DriverNIC)
		driver, err := s.activeDriver(ctx, claims.OrganizationID, driverNIC)
		if err != nil {
			return nil, err
		}
		vehicle.DriverNIC = driverNIC
		vehicle.Driver = models.ContactSnapshot{
			Name:     driver.FullName,
			Phone:    driver.PhoneNumber,
			Whatsapp: driver.WhatsappNumber,
		}
	}

	if _, err := s.vehicles.FindVehicleByNumber(ctx, claims.OrganizationID, number); err == nil {
		return nil, ErrDuplicateVehicle
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	return s.vehicles.InsertVehicle(ctx, vehicle)
}

// GetVehicle fetches one vehicle scoped to the caller's organization.
func (s *Service) GetVehicle(ctx context.Context, claims models.Claims, id string) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.FindVehicleByID(ctx, id, claims.OrganizationID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return vehicle, nil
}

// UpdateVehicleInput is a partial administrative edit of a vehicle.
type UpdateVehicleInput struct {
	VehicleType *string               `json:"vehicle_type"`
	Capacity    *int                  `json:"capacity"`
	DriverNIC   *string               `json:"driver_nic"`
	Status      *models.VehicleStatus `json:"status"`
}

// UpdateVehicle applies administrative edits. A status change goes
// through the dedicated status path, which is the only code allowed to
// write vehicle status; a driver change refreshes the driver snapshot.
func (s *Service) UpdateVehicle(ctx context.Context, claims models.Claims, id string, in UpdateVehicleInput) (*models.Vehicle, error) {
	update := bson.M{}
	if in.VehicleType != nil {
		if !models.IsValidVehicleType(*in.VehicleType) {
			return nil, ErrValidation
		}
		update["vehicle_type"] = *in.VehicleType
	}
	if in.Capacity != nil {
		if *in.Capacity < 1 {
			return nil, ErrValidation
		}
		update["capacity"] = *in.Capacity
	}
	if in.DriverNIC != nil {
		if *in.DriverNIC == "" {
			update["driver_nic"] = ""
			update["driver"] = models.ContactSnapshot{}
		} else {
			driverNIC := NormalizeNIC(*in.DriverNIC)
			driver, err := s.activeDriver(ctx, claims.OrganizationID, driverNIC)
			if err != nil {
				return nil, err
			}
			update["driver_nic"] = driverNIC
			update["driver"] = models.ContactSnapshot{
				Name:     driver.FullName,
				Phone:    driver.PhoneNumber,
				Whatsapp: driver.WhatsappNumber,
			}
		}
	}

	var vehicle *models.Vehicle
	var err error
	if len(update) > 0 {
		vehicle, err = s.vehicles.UpdateVehicle(ctx, id, claims.OrganizationID, update)
		if err != nil {
			return nil, mapNotFound(err)
		}
	}
	if in.Status != nil {
		vehicle, err = s.vehicles.UpdateVehicleStatus(ctx, id, claims.OrganizationID, *in.Status)
		if err != nil {
			return nil, mapNotFound(err)
		}
	}
	if vehicle == nil {
		return s.GetVehicle(ctx, claims, id)
	}
	return vehicle, nil
}

// RefreshSnapshot re-resolves the owner and driver contact details of a
// vehicle and rewrites the denormalized snapshot. This is the only way a
// snapshot catches up with directory edits.
func (s *Service) RefreshSnapshot(ctx context.Context, claims models.Claims, id string) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.FindVehicleByID(ctx, id, claims.OrganizationID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	owner, err := s.owners.FindOwnerByNIC(ctx, vehicle.OwnerNIC)
	if err != nil {
		return nil, mapNotFound(err)
	}
	update := bson.M{"owner": models.ContactSnapshot{
		Name:     owner.FullName,
		Phone:    owner.PhoneNumber,
		Whatsapp: owner.WhatsappNumber,
	}}

	if vehicle.DriverNIC != "" {
		driver, err := s.drivers.FindDriverByNIC(ctx, claims.OrganizationID, vehicle.DriverNIC)
		if err != nil {
			return nil, mapNotFound(err)
		}
		update["driver"] = models.ContactSnapshot{
			Name:     driver.FullName,
			Phone:    driver.PhoneNumber,
			Whatsapp: driver.WhatsappNumber,
		}
	}

	refreshed, err := s.vehicles.UpdateVehicle(ctx, id, claims.OrganizationID, update)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return refreshed, nil
}

// DeleteVehicle removes a vehicle unless a hire that has not finished
// still references it.
func (s *Service) DeleteVehicle(ctx context.Context, claims models.Claims, id string) error {
	vehicle, err := s.vehicles.FindVehicleByID(ctx, id, claims.OrganizationID)
	if err != nil {
		return mapNotFound(err)
	}

	busy, err := s.hires.CountHires(ctx, bson.M{
		"organization_id": claims.OrganizationID,
		"vehicle_id":      vehicle.ID,
		"status":          bson.M{"$in": models.LiveStatuses()},
	})
	if err != nil {
		return err
	}
	if busy > 0 {
		return ErrVehicleBusy
	}

	if err := s.vehicles.DeleteVehicle(ctx, id, claims.OrganizationID); err != nil {
		return mapNotFound(err)
	}
	return nil
}

// ListVehicles lists the organization's vehicles without any availability
// filtering. The time-aware availability listing lives with the hire
// lifecycle, which owns the conflict window.
func (s *Service) ListVehicles(ctx context.Context, claims models.Claims, vehicleType string) ([]models.Vehicle, error) {
	filter := bson.M{"organization_id": claims.OrganizationID}
	if vehicleType != "" {
		filter["vehicle_type"] = vehicleType
	}
	return s.vehicles.FindVehicles(ctx, filter)
}

func (s *Service) activeDriver(ctx context.Context, organizationID, nic string) (*models.Driver, error) {
	driver, err := s.drivers.FindDriverByNIC(ctx, organizationID, nic)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrDriverInactive
		}
		return nil, err
	}
	if driver.Status != models.OwnerActive {
		return nil, ErrDriverInactive
	}
	return driver, nil
}
