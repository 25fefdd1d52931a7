package fleet

import (
	"context"

	"github.com/hireflow/hireflow/internal/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MockVehicleCollection is a mock implementation of db.VehicleCollection
type MockVehicleCollection struct {
	mock.Mock
}

func (m *MockVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	args := m.Called(ctx, vehicle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicleByID(ctx context.Context, id, organizationID string) (*models.Vehicle, error) {
	args := m.Called(ctx, id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicleByNumber(ctx context.Context, organizationID, vehicleNumber string) (*models.Vehicle, error) {
	args := m.Called(ctx, organizationID, vehicleNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicles(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Vehicle, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) UpdateVehicle(ctx context.Context, id, organizationID string, update bson.M) (*models.Vehicle, error) {
	args := m.Called(ctx, id, organizationID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) UpdateVehicleStatus(ctx context.Context, id, organizationID string, status models.VehicleStatus) (*models.Vehicle, error) {
	args := m.Called(ctx, id, organizationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) DeleteVehicle(ctx context.Context, id, organizationID string) error {
	args := m.Called(ctx, id, organizationID)
	return args.Error(0)
}

func (m *MockVehicleCollection) CountVehicles(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleCollection) DeleteVehiclesByOrganization(ctx context.Context, organizationID string) (int64, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).(int64), args.Error(1)
}

// MockOwnerCollection is a mock implementation of db.OwnerCollection
type MockOwnerCollection struct {
	mock.Mock
}

func (m *MockOwnerCollection) InsertOwner(ctx context.Context, owner models.VehicleOwner) (*models.VehicleOwner, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VehicleOwner), args.Error(1)
}

func (m *MockOwnerCollection) FindOwnerByNIC(ctx context.Context, nic string) (*models.VehicleOwner, error) {
	args := m.Called(ctx, nic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VehicleOwner), args.Error(1)
}

func (m *MockOwnerCollection) FindOwners(ctx context.Context, filter bson.M) ([]models.VehicleOwner, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VehicleOwner), args.Error(1)
}

func (m *MockOwnerCollection) InsertCompanyOwner(ctx context.Context, membership models.CompanyOwner) (*models.CompanyOwner, error) {
	args := m.Called(ctx, membership)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyOwner), args.Error(1)
}

func (m *MockOwnerCollection) FindCompanyOwner(ctx context.Context, organizationID, nic string) (*models.CompanyOwner, error) {
	args := m.Called(ctx, organizationID, nic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyOwner), args.Error(1)
}

func (m *MockOwnerCollection) FindCompanyOwners(ctx context.Context, organizationID string) ([]models.CompanyOwner, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CompanyOwner), args.Error(1)
}

func (m *MockOwnerCollection) UpdateCompanyOwnerStatus(ctx context.Context, id, organizationID string, status models.OwnerStatus) (*models.CompanyOwner, error) {
	args := m.Called(ctx, id, organizationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyOwner), args.Error(1)
}

// MockDriverCollection is a mock implementation of db.DriverCollection
type MockDriverCollection struct {
	mock.Mock
}

func (m *MockDriverCollection) InsertDriver(ctx context.Context, driver models.Driver) (*models.Driver, error) {
	args := m.Called(ctx, driver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverCollection) FindDriverByNIC(ctx context.Context, organizationID, nic string) (*models.Driver, error) {
	args := m.Called(ctx, organizationID, nic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverCollection) FindDrivers(ctx context.Context, filter bson.M) ([]models.Driver, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Driver), args.Error(1)
}

// MockHireCollection is a mock implementation of db.HireCollection
type MockHireCollection struct {
	mock.Mock
}

func (m *MockHireCollection) InsertHire(ctx context.Context, hire models.Hire) (*models.Hire, error) {
	args := m.Called(ctx, hire)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hire), args.Error(1)
}

func (m *MockHireCollection) FindHireByID(ctx context.Context, id, organizationID string) (*models.Hire, error) {
	args := m.Called(ctx, id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hire), args.Error(1)
}

func (m *MockHireCollection) FindHires(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Hire, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hire), args.Error(1)
}

func (m *MockHireCollection) TransitionHire(ctx context.Context, id, organizationID string, from []models.HireStatus, guard bson.M, update bson.M) (*models.Hire, error) {
	args := m.Called(ctx, id, organizationID, from, guard, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hire), args.Error(1)
}

func (m *MockHireCollection) DeleteHire(ctx context.Context, id, organizationID string) (*models.Hire, error) {
	args := m.Called(ctx, id, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hire), args.Error(1)
}

func (m *MockHireCollection) CountHires(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHireCollection) DeleteHiresByOrganization(ctx context.Context, organizationID string) (int64, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).(int64), args.Error(1)
}

func testClaims() models.Claims {
	return models.Claims{
		UserID:           "user-1",
		OrganizationID:   "org-1",
		OrganizationName: "Lanka Cabs",
		Role:             models.RoleManager,
	}
}

func newTestService(vehicles *MockVehicleCollection, owners *MockOwnerCollection, drivers *MockDriverCollection, hires *MockHireCollection) *Service {
	return NewService(vehicles, owners, drivers, hires)
}
