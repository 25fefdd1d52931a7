package fleet

import (
	"context"
	"errors"

	"github.com/hireflow/hireflow/internal/db"
	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VehicleAllocation groups the hires assigned to one vehicle.
type VehicleAllocation struct {
	VehicleNumber string        `json:"vehicle_number"`
	VehicleType   string        `json:"vehicle_type"`
	Capacity      int           `json:"capacity"`
	Hires         []models.Hire `json:"hires"`
}

// OwnerAllocation groups an owner's vehicles and their hires.
type OwnerAllocation struct {
	OwnerNIC   string               `json:"owner_nic"`
	OwnerName  string               `json:"owner_name"`
	OwnerPhone string               `json:"owner_phone"`
	Vehicles   []*VehicleAllocation `json:"vehicles"`
}

// Allocations returns the organization's vehicle-bound hires bucketed
// first by owner NIC and then by vehicle number. Hires keep their
// newest-first order inside each bucket; bucket order follows first
// appearance. statusFilter narrows to one status, empty shows everything
// from unassigned through completed.
func (s *Service) Allocations(ctx context.Context, claims models.Claims, statusFilter string) ([]*OwnerAllocation, error) {
	filter := bson.M{
		"organization_id": claims.OrganizationID,
		"vehicle_id":      bson.M{"$exists": true, "$ne": nil},
	}
	if statusFilter != "" && statusFilter != "all" {
		filter["status"] = statusFilter
	} else {
		filter["status"] = bson.M{"$in": append(models.LiveStatuses(), models.HireStatusCompleted)}
	}

	hires, err := s.hires.FindHires(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	vehicleByID, err := s.vehicleIndex(ctx, claims.OrganizationID)
	if err != nil {
		return nil, err
	}

	var owners []*OwnerAllocation
	ownerIndex := map[string]*OwnerAllocation{}
	vehicleIndex := map[string]*VehicleAllocation{}

	for _, h := range hires {
		if h.VehicleID == nil {
			continue
		}
		vehicle, ok := vehicleByID[*h.VehicleID]
		if !ok {
			continue
		}

		owner := ownerIndex[vehicle.OwnerNIC]
		if owner == nil {
			owner = &OwnerAllocation{OwnerNIC: vehicle.OwnerNIC, OwnerName: "Unknown", OwnerPhone: "-"}
			if record, err := s.owners.FindOwnerByNIC(ctx, vehicle.OwnerNIC); err == nil {
				owner.OwnerName = record.FullName
				owner.OwnerPhone = record.PhoneNumber
			} else if !errors.Is(err, db.ErrNotFound) {
				return nil, err
			}
			ownerIndex[vehicle.OwnerNIC] = owner
			owners = append(owners, owner)
		}

		bucketKey := vehicle.OwnerNIC + "/" + vehicle.VehicleNumber
		bucket := vehicleIndex[bucketKey]
		if bucket == nil {
			bucket = &VehicleAllocation{
				VehicleNumber: vehicle.VehicleNumber,
				VehicleType:   vehicle.VehicleType,
				Capacity:      vehicle.Capacity,
			}
			vehicleIndex[bucketKey] = bucket
			owner.Vehicles = append(owner.Vehicles, bucket)
		}
		bucket.Hires = append(bucket.Hires, h)
	}
	return owners, nil
}

func (s *Service) vehicleIndex(ctx context.Context, organizationID string) (map[primitive.ObjectID]models.Vehicle, error) {
	vehicles, err := s.vehicles.FindVehicles(ctx, bson.M{"organization_id": organizationID})
	if err != nil {
		return nil, err
	}
	index := make(map[primitive.ObjectID]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		index[v.ID] = v
	}
	return index, nil
}
