package hire

import (
	"context"
	"testing"
	"time"

	"github.com/hireflow/hireflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestService_ListAvailableVehicles_NoTimeFilter(t *testing.T) {
	hires := new(MockHireCollection)
	vehicles := new(MockVehicleCollection)
	service, _ := newTestService(hires, vehicles, new(MockCounterCollection))

	fleet := []models.Vehicle{{ID: primitive.NewObjectID()}, {ID: primitive.NewObjectID()}}
	vehicles.On("FindVehicles", mock.Anything, bson.M{
		"organization_id": "org-1",
		"status":          models.VehicleAvailable,
	}).Return(fleet, nil)

	result, err := service.ListAvailableVehicles(context.Background(), testClaims(), "", nil)

	assert.NoError(t, err)
	assert.Equal(t, fleet, result)
	hires.AssertNotCalled(t, "FindHires", mock.Anything, mock.Anything)
}

func TestService_ListAvailableVehicles_TypeFilter(t *testing.T) {
	vehicles := new(MockVehicleCollection)
	service, _ := newTestService(new(MockHireCollection), vehicles, new(MockCounterCollection))

	vehicles.On("FindVehicles", mock.Anything, bson.M{
		"organization_id": "org-1",
		"status":          models.VehicleAvailable,
		"vehicle_type":    "Van",
	}).Return([]models.Vehicle{}, nil)

	_, err := service.ListAvailableVehicles(context.Background(), testClaims(), "Van", nil)

	assert.NoError(t, err)
	vehicles.AssertExpectations(t)
}

func TestService_ListAvailableVehicles_ExcludesConflicting(t *testing.T) {
	hires := new(MockHireCollection)
	vehicles := new(MockVehicleCollection)
	service, _ := newTestService(hires, vehicles, new(MockCounterCollection))

	busyID := primitive.NewObjectID()
	freeID := primitive.NewObjectID()
	requestedAt := time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)

	vehicles.On("FindVehicles", mock.Anything, mock.Anything).Return([]models.Vehicle{
		{ID: busyID}, {ID: freeID},
	}, nil)
	hires.On("FindHires", mock.Anything, mock.MatchedBy(func(filter bson.M) bool {
		window, ok := filter["date_time"].(bson.M)
		if !ok {
			return false
		}
		return window["$gte"] == requestedAt.Add(-time.Hour) && window["$lte"] == requestedAt.Add(time.Hour)
	})).Return([]models.Hire{
		{Status: models.HireStatusAccepted, VehicleID: &busyID, DateTime: requestedAt.Add(30 * time.Minute)},
	}, nil)

	result, err := service.ListAvailableVehicles(context.Background(), testClaims(), "", &requestedAt)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, freeID, result[0].ID)
	hires.AssertExpectations(t)
}

func TestService_ListAvailableVehicles_WindowEdgesConflict(t *testing.T) {
	hires := new(MockHireCollection)
	vehicles := new(MockVehicleCollection)
	service, _ := newTestService(hires, vehicles, new(MockCounterCollection))

	atLowerEdge := primitive.NewObjectID()
	atUpperEdge := primitive.NewObjectID()
	freeID := primitive.NewObjectID()
	requestedAt := time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)

	vehicles.On("FindVehicles", mock.Anything, mock.Anything).Return([]models.Vehicle{
		{ID: atLowerEdge}, {ID: atUpperEdge}, {ID: freeID},
	}, nil)
	// Hires exactly one hour either side of the requested time: both
	// window edges are inclusive, so both vehicles are busy.
	hires.On("FindHires", mock.Anything, mock.Anything).Return([]models.Hire{
		{Status: models.HireStatusAccepted, VehicleID: &atLowerEdge, DateTime: requestedAt.Add(-time.Hour)},
		{Status: models.HireStatusActive, VehicleID: &atUpperEdge, DateTime: requestedAt.Add(time.Hour)},
	}, nil)

	result, err := service.ListAvailableVehicles(context.Background(), testClaims(), "", &requestedAt)

	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, freeID, result[0].ID)
}

func TestService_ListAvailableVehicles_NoConflicts(t *testing.T) {
	hires := new(MockHireCollection)
	vehicles := new(MockVehicleCollection)
	service, _ := newTestService(hires, vehicles, new(MockCounterCollection))

	fleet := []models.Vehicle{{ID: primitive.NewObjectID()}}
	requestedAt := time.Now().Add(48 * time.Hour)

	vehicles.On("FindVehicles", mock.Anything, mock.Anything).Return(fleet, nil)
	hires.On("FindHires", mock.Anything, mock.Anything).Return([]models.Hire{}, nil)

	result, err := service.ListAvailableVehicles(context.Background(), testClaims(), "", &requestedAt)

	assert.NoError(t, err)
	assert.Equal(t, fleet, result)
}
