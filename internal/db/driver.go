package db

import (
	"context"
	"errors"
	"time"

	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDriverCollection implements DriverCollection for MongoDB.
type MongoDriverCollection struct {
	Collection *mongo.Collection
}

// InsertDriver inserts a driver record.
func (c *MongoDriverCollection) InsertDriver(ctx context.Context, driver models.Driver) (*models.Driver, error) {
	driver.CreatedAt = time.Now()
	driver.UpdatedAt = driver.CreatedAt

	result, err := c.Collection.InsertOne(ctx, driver)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		driver.ID = oid
	}
	return &driver, nil
}

// FindDriverByNIC finds a driver by NIC within one organization.
func (c *MongoDriverCollection) FindDriverByNIC(ctx context.Context, organizationID, nic string) (*models.Driver, error) {
	var driver models.Driver
	err := c.Collection.FindOne(ctx, bson.M{
		"organization_id": organizationID,
		"nic_number":      nic,
	}).Decode(&driver)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

// FindDrivers queries driver records.
func (c *MongoDriverCollection) FindDrivers(ctx context.Context, filter bson.M) ([]models.Driver, error) {
	cursor, err := c.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var drivers []models.Driver
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}
