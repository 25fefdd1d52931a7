package hire

import (
	"context"
	"time"

	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListAvailableVehicles returns the organization's available vehicles,
// optionally narrowed by type, newest first. With a requested pickup time
// the result excludes every vehicle already referenced by a live hire
// scheduled inside the requested time's conflict window; without one the
// candidates are returned unfiltered.
func (s *Service) ListAvailableVehicles(ctx context.Context, claims models.Claims, vehicleType string, requestedAt *time.Time) ([]models.Vehicle, error) {
	filter := bson.M{
		"organization_id": claims.OrganizationID,
		"status":          models.VehicleAvailable,
	}
	if vehicleType != "" {
		filter["vehicle_type"] = vehicleType
	}

	vehicles, err := s.vehicles.FindVehicles(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	if requestedAt == nil {
		return vehicles, nil
	}

	windowStart, windowEnd := ConflictWindow(*requestedAt)
	conflicting, err := s.hires.FindHires(ctx, bson.M{
		"organization_id": claims.OrganizationID,
		"status":          bson.M{"$in": models.LiveStatuses()},
		"vehicle_id":      bson.M{"$exists": true, "$ne": nil},
		"date_time":       bson.M{"$gte": windowStart, "$lte": windowEnd},
	})
	if err != nil {
		return nil, err
	}

	busy := make(map[primitive.ObjectID]bool, len(conflicting))
	for _, h := range conflicting {
		if h.VehicleID != nil {
			busy[*h.VehicleID] = true
		}
	}
	return FilterConflicting(vehicles, busy), nil
}
