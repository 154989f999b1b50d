package dao

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoWhatsNewDAO struct {
	col *mongo.Collection
}

func NewMongoWhatsNewDAO(db *mongo.Database) WhatsNewDAO {
	return &MongoWhatsNewDAO{
		col: db.Collection(ColWhatsNew),
	}
}

func (d *MongoWhatsNewDAO) Bump(ctx context.Context, userID string, field string, now time.Time) error {
	filter := bson.M{"userId": userID}
	// 先看有没有，没有的话要在 upsert 里带上默认文案
	// 这里不是原子的，并发下最多丢一次 message 的初始化，计数不会丢
	err := d.col.FindOne(ctx, filter).Err()
	set := bson.M{"lastUpdate": now}
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		set["message"] = DefaultMessage(now)
	case err != nil:
		return err
	}
	_, err = d.col.UpdateOne(ctx, filter, bson.M{
		"$set": set,
		"$inc": bson.M{field: int64(1)},
	}, options.Update().SetUpsert(true))
	return err
}

func (d *MongoWhatsNewDAO) FindByUser(ctx context.Context, userID string) (WhatsNewInfo, error) {
	var res WhatsNewInfo
	err := d.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&res)
	return res, err
}

func (d *MongoWhatsNewDAO) Save(ctx context.Context, info WhatsNewInfo) error {
	_, err := d.col.ReplaceOne(ctx, bson.M{"userId": info.UserID}, info,
		options.Replace().SetUpsert(true))
	return err
}

func (d *MongoWhatsNewDAO) Insert(ctx context.Context, info WhatsNewInfo) error {
	_, err := d.col.InsertOne(ctx, info)
	return err
}
