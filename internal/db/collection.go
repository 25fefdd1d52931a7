package db

import (
	"context"
	"errors"

	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no document matches the requested id,
// organization and (for transitions) required prior status. Callers
// cannot distinguish "missing" from "wrong state"; the ambiguity is kept
// on purpose for parity with existing clients.
var ErrNotFound = errors.New("document not found")

// ErrStatusWrite is returned when a vehicle update attempts to write the
// status field through the general update path.
var ErrStatusWrite = errors.New("vehicle status can only be changed via UpdateVehicleStatus")

// HireCollection defines the interface for hire data operations.
//
// TransitionHire is the only way to move a hire between states: it matches
// on the expected prior statuses atomically, so two racing transitions
// cannot both pass the guard. The optional guard adds further fields to
// the match predicate for callers whose update depends on a value they
// read before the write.
type HireCollection interface {
	InsertHire(ctx context.Context, hire models.Hire) (*models.Hire, error)
	FindHireByID(ctx context.Context, id, organizationID string) (*models.Hire, error)
	FindHires(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Hire, error)
	TransitionHire(ctx context.Context, id, organizationID string, from []models.HireStatus, guard bson.M, update bson.M) (*models.Hire, error)
	DeleteHire(ctx context.Context, id, organizationID string) (*models.Hire, error)
	CountHires(ctx context.Context, filter bson.M) (int64, error)
	DeleteHiresByOrganization(ctx context.Context, organizationID string) (int64, error)
}

// VehicleCollection defines the interface for vehicle data operations.
//
// UpdateVehicle rejects writes to the status field; hire transition code
// holds no reference to UpdateVehicleStatus, which keeps the "vehicle
// status is never a hire side effect" rule enforced at the data layer.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id, organizationID string) (*models.Vehicle, error)
	FindVehicleByNumber(ctx context.Context, organizationID, vehicleNumber string) (*models.Vehicle, error)
	FindVehicles(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id, organizationID string, update bson.M) (*models.Vehicle, error)
	UpdateVehicleStatus(ctx context.Context, id, organizationID string, status models.VehicleStatus) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id, organizationID string) error
	CountVehicles(ctx context.Context, filter bson.M) (int64, error)
	DeleteVehiclesByOrganization(ctx context.Context, organizationID string) (int64, error)
}

// OwnerCollection covers the global vehicle-owner registry and the
// per-organization membership records.
type OwnerCollection interface {
	InsertOwner(ctx context.Context, owner models.VehicleOwner) (*models.VehicleOwner, error)
	FindOwnerByNIC(ctx context.Context, nic string) (*models.VehicleOwner, error)
	FindOwners(ctx context.Context, filter bson.M) ([]models.VehicleOwner, error)
	InsertCompanyOwner(ctx context.Context, membership models.CompanyOwner) (*models.CompanyOwner, error)
	FindCompanyOwner(ctx context.Context, organizationID, nic string) (*models.CompanyOwner, error)
	FindCompanyOwners(ctx context.Context, organizationID string) ([]models.CompanyOwner, error)
	UpdateCompanyOwnerStatus(ctx context.Context, id, organizationID string, status models.OwnerStatus) (*models.CompanyOwner, error)
}

// DriverCollection defines the interface for driver data operations.
type DriverCollection interface {
	InsertDriver(ctx context.Context, driver models.Driver) (*models.Driver, error)
	FindDriverByNIC(ctx context.Context, organizationID, nic string) (*models.Driver, error)
	FindDrivers(ctx context.Context, filter bson.M) ([]models.Driver, error)
}

// UserCollection defines the interface for user database operations.
type UserCollection interface {
	InsertUser(ctx context.Context, user models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
}

// CounterCollection hands out per-organization sequence numbers for
// human-readable hire ids.
type CounterCollection interface {
	NextHireSequence(ctx context.Context, organizationID string) (int64, error)
}
