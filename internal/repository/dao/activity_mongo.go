package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type MongoActivityDAO struct {
	col *mongo.Collection
}

func NewMongoActivityDAO(db *mongo.Database) ActivityDAO {
	return &MongoActivityDAO{
		col: db.Collection(ColRawActivity),
	}
}

func (d *MongoActivityDAO) Insert(ctx context.Context, record ActivityRecord) error {
	_, err := d.col.InsertOne(ctx, record)
	return err
}
