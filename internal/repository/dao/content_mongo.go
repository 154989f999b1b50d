package dao

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoContentDAO struct {
	registry *mongo.Collection
	users    *mongo.Collection
}

func NewMongoContentDAO(db *mongo.Database) ContentDAO {
	return &MongoContentDAO{
		registry: db.Collection(ColContentRegistry),
		users:    db.Collection(ColUsers),
	}
}

func (d *MongoContentDAO) FindOwnership(ctx context.Context, contentID string) (ContentOwnership, error) {
	var res ContentOwnership
	err := d.registry.FindOne(ctx, bson.M{"_id": contentID}).Decode(&res)
	return res, err
}

func (d *MongoContentDAO) UpdateLastLogin(ctx context.Context, userID string, t time.Time) error {
	_, err := d.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"lastLogin": t},
	}, options.Update().SetUpsert(true))
	return err
}
