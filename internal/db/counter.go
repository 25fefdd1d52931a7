package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCounterCollection implements CounterCollection using one counter
// document per organization, incremented atomically with upsert.
type MongoCounterCollection struct {
	Collection *mongo.Collection
}

type counterDoc struct {
	Sequence int64 `bson:"sequence"`
}

// NextHireSequence returns the next hire sequence number for an
// organization, starting at 1.
func (c *MongoCounterCollection) NextHireSequence(ctx context.Context, organizationID string) (int64, error) {
	after := options.After
	upsert := true
	opts := &options.FindOneAndUpdateOptions{ReturnDocument: &after, Upsert: &upsert}

	var doc counterDoc
	err := c.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": "hires:" + organizationID},
		bson.M{"$inc": bson.M{"sequence": 1}}, opts).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Sequence, nil
}
