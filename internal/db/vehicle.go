package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoVehicleCollection implements VehicleCollection for MongoDB.
type MongoVehicleCollection struct {
	Collection *mongo.Collection
}

// InsertVehicle inserts a vehicle record.
func (c *MongoVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = vehicle.CreatedAt

	result, err := c.Collection.InsertOne(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		vehicle.ID = oid
	}
	return &vehicle, nil
}

// FindVehicleByID finds a vehicle scoped to one organization.
func (c *MongoVehicleCollection) FindVehicleByID(ctx context.Context, id, organizationID string) (*models.Vehicle, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID: %w", ErrNotFound)
	}

	var vehicle models.Vehicle
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID, "organization_id": organizationID}).Decode(&vehicle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindVehicleByNumber looks up a vehicle by its registration number
// within one organization.
func (c *MongoVehicleCollection) FindVehicleByNumber(ctx context.Context, organizationID, vehicleNumber string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := c.Collection.FindOne(ctx, bson.M{
		"organization_id": organizationID,
		"vehicle_number":  vehicleNumber,
	}).Decode(&vehicle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindVehicles queries vehicle records.
func (c *MongoVehicleCollection) FindVehicles(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Vehicle, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// UpdateVehicle applies a $set update to a vehicle. Writes to the status
// field are rejected here: status is not an ordinary field and must go
// through UpdateVehicleStatus, which only administrative handlers call.
func (c *MongoVehicleCollection) UpdateVehicle(ctx context.Context, id, organizationID string, update bson.M) (*models.Vehicle, error) {
	if _, ok := update["status"]; ok {
		return nil, ErrStatusWrite
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID: %w", ErrNotFound)
	}

	update["updated_at"] = time.Now()

	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}

	var vehicle models.Vehicle
	err = c.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID, "organization_id": organizationID},
		bson.M{"$set": update}, opts).Decode(&vehicle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// UpdateVehicleStatus sets the administrative status of a vehicle.
func (c *MongoVehicleCollection) UpdateVehicleStatus(ctx context.Context, id, organizationID string, status models.VehicleStatus) (*models.Vehicle, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID: %w", ErrNotFound)
	}

	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}

	var vehicle models.Vehicle
	err = c.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID, "organization_id": organizationID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}, opts).Decode(&vehicle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// DeleteVehicle deletes a vehicle by its ID.
func (c *MongoVehicleCollection) DeleteVehicle(ctx context.Context, id, organizationID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid vehicle ID: %w", ErrNotFound)
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "organization_id": organizationID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountVehicles counts vehicle records matching a filter.
func (c *MongoVehicleCollection) CountVehicles(ctx context.Context, filter bson.M) (int64, error) {
	return c.Collection.CountDocuments(ctx, filter)
}

// DeleteVehiclesByOrganization removes every vehicle belonging to one
// organization. Used by the admin reset only.
func (c *MongoVehicleCollection) DeleteVehiclesByOrganization(ctx context.Context, organizationID string) (int64, error) {
	result, err := c.Collection.DeleteMany(ctx, bson.M{"organization_id": organizationID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
