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

// MongoHireCollection implements HireCollection for MongoDB.
type MongoHireCollection struct {
	Collection *mongo.Collection
}

// InsertHire inserts a hire record and returns it with its generated id.
func (c *MongoHireCollection) InsertHire(ctx context.Context, hire models.Hire) (*models.Hire, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	hire.CreatedAt = time.Now()
	hire.UpdatedAt = hire.CreatedAt

	result, err := c.Collection.InsertOne(ctx, hire)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		hire.ID = oid
	}
	return &hire, nil
}

// FindHireByID finds a hire scoped to one organization.
func (c *MongoHireCollection) FindHireByID(ctx context.Context, id, organizationID string) (*models.Hire, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid hire ID: %w", ErrNotFound)
	}

	var hire models.Hire
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID, "organization_id": organizationID}).Decode(&hire)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hire, nil
}

// FindHires queries hire records.
func (c *MongoHireCollection) FindHires(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Hire, error) {
	cursor, err := c.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var hires []models.Hire
	if err := cursor.All(ctx, &hires); err != nil {
		return nil, err
	}
	return hires, nil
}

// TransitionHire applies an update to a hire only if its current status is
// one of the expected prior statuses. The status match is part of the
// atomic update predicate, so a racing transition whose read is stale
// cannot pass the guard; it observes ErrNotFound instead. Extra guard
// fields are merged into the same predicate.
func (c *MongoHireCollection) TransitionHire(ctx context.Context, id, organizationID string, from []models.HireStatus, guard bson.M, update bson.M) (*models.Hire, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid hire ID: %w", ErrNotFound)
	}

	filter := bson.M{
		"_id":             objectID,
		"organization_id": organizationID,
	}
	if len(from) > 0 {
		filter["status"] = bson.M{"$in": from}
	}
	for field, value := range guard {
		filter[field] = value
	}

	set, _ := update["$set"].(bson.M)
	if set == nil {
		set = bson.M{}
		update["$set"] = set
	}
	set["updated_at"] = time.Now()

	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}

	var hire models.Hire
	err = c.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&hire)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hire, nil
}

// DeleteHire removes a hire and returns the removed document.
func (c *MongoHireCollection) DeleteHire(ctx context.Context, id, organizationID string) (*models.Hire, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid hire ID: %w", ErrNotFound)
	}

	var hire models.Hire
	err = c.Collection.FindOneAndDelete(ctx, bson.M{"_id": objectID, "organization_id": organizationID}).Decode(&hire)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hire, nil
}

// CountHires counts hire records matching a filter.
func (c *MongoHireCollection) CountHires(ctx context.Context, filter bson.M) (int64, error) {
	return c.Collection.CountDocuments(ctx, filter)
}

// DeleteHiresByOrganization removes every hire belonging to one
// organization. Used by the admin reset only.
func (c *MongoHireCollection) DeleteHiresByOrganization(ctx context.Context, organizationID string) (int64, error) {
	result, err := c.Collection.DeleteMany(ctx, bson.M{"organization_id": organizationID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
