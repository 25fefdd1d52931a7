package db

import (
	"context"
	"errors"
	"time"

	"github.com/hireflow/hireflow/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOwnerCollection implements OwnerCollection over the global owner
// registry and the per-organization membership collection.
type MongoOwnerCollection struct {
	Owners      *mongo.Collection
	Memberships *mongo.Collection
}

// InsertOwner creates a global owner record.
func (c *MongoOwnerCollection) InsertOwner(ctx context.Context, owner models.VehicleOwner) (*models.VehicleOwner, error) {
	owner.CreatedAt = time.Now()
	owner.UpdatedAt = owner.CreatedAt

	result, err := c.Owners.InsertOne(ctx, owner)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		owner.ID = oid
	}
	return &owner, nil
}

// FindOwnerByNIC looks up a global owner. NICs are stored uppercase;
// callers normalize before querying.
func (c *MongoOwnerCollection) FindOwnerByNIC(ctx context.Context, nic string) (*models.VehicleOwner, error) {
	var owner models.VehicleOwner
	err := c.Owners.FindOne(ctx, bson.M{"nic_number": nic}).Decode(&owner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &owner, nil
}

// FindOwners queries the global owner registry.
func (c *MongoOwnerCollection) FindOwners(ctx context.Context, filter bson.M) ([]models.VehicleOwner, error) {
	cursor, err := c.Owners.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var owners []models.VehicleOwner
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

// InsertCompanyOwner attaches an owner to an organization.
func (c *MongoOwnerCollection) InsertCompanyOwner(ctx context.Context, membership models.CompanyOwner) (*models.CompanyOwner, error) {
	membership.CreatedAt = time.Now()
	membership.UpdatedAt = membership.CreatedAt
	if membership.AssignedAt.IsZero() {
		membership.AssignedAt = membership.CreatedAt
	}

	result, err := c.Memberships.InsertOne(ctx, membership)
	if err != nil {
		return nil, err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		membership.ID = oid
	}
	return &membership, nil
}

// FindCompanyOwner finds the membership of an owner in one organization.
func (c *MongoOwnerCollection) FindCompanyOwner(ctx context.Context, organizationID, nic string) (*models.CompanyOwner, error) {
	var membership models.CompanyOwner
	err := c.Memberships.FindOne(ctx, bson.M{
		"organization_id": organizationID,
		"owner_nic":       nic,
	}).Decode(&membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &membership, nil
}

// FindCompanyOwners lists the owner memberships of one organization.
func (c *MongoOwnerCollection) FindCompanyOwners(ctx context.Context, organizationID string) ([]models.CompanyOwner, error) {
	cursor, err := c.Memberships.Find(ctx, bson.M{"organization_id": organizationID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []models.CompanyOwner
	if err := cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// UpdateCompanyOwnerStatus toggles the per-organization membership status.
// The owner's global SystemStatus is left untouched.
func (c *MongoOwnerCollection) UpdateCompanyOwnerStatus(ctx context.Context, id, organizationID string, status models.OwnerStatus) (*models.CompanyOwner, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	after := options.After
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after}

	var membership models.CompanyOwner
	err = c.Memberships.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID, "organization_id": organizationID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}, opts).Decode(&membership)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &membership, nil
}
