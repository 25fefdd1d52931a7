package hire

import (
	"context"

	"github.com/hireflow/hireflow/internal/models"
	"github.com/hireflow/hireflow/internal/notify"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

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

// MockCounterCollection is a mock implementation of db.CounterCollection
type MockCounterCollection struct {
	mock.Mock
}

func (m *MockCounterCollection) NextHireSequence(ctx context.Context, organizationID string) (int64, error) {
	args := m.Called(ctx, organizationID)
	return args.Get(0).(int64), args.Error(1)
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	events []notify.Event
}

func (p *recordingPublisher) PublishHireEvent(event notify.Event) error {
	p.events = append(p.events, event)
	return nil
}

func testClaims() models.Claims {
	return models.Claims{
		UserID:           "user-1",
		OrganizationID:   "org-1",
		OrganizationName: "Lanka Cabs",
		Role:             models.RoleManager,
	}
}
