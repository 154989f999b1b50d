package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStatsDAO struct {
	contentStats     *mongo.Collection
	userStats        *mongo.Collection
	userContentStats *mongo.Collection
	groupStats       *mongo.Collection
	systemStats      *mongo.Collection
}

func NewMongoStatsDAO(db *mongo.Database) StatsDAO {
	return &MongoStatsDAO{
		contentStats:     db.Collection(ColContentStats),
		userStats:        db.Collection(ColUserStats),
		userContentStats: db.Collection(ColUserContentStats),
		groupStats:       db.Collection(ColGroupStats),
		systemStats:      db.Collection(ColSystemStats),
	}
}

func (d *MongoStatsDAO) IncrContentStat(ctx context.Context, contentID string, key DateKey, field string) error {
	return d.upsertIncr(ctx, d.contentStats, bson.M{
		"contentId": contentID,
		"year":      key.Year,
		"month":     key.Month,
		"day":       key.Day,
	}, key, field)
}

func (d *MongoStatsDAO) IncrUserStat(ctx context.Context, userID string, key DateKey, field string) error {
	return d.upsertIncr(ctx, d.userStats, bson.M{
		"userId": userID,
		"year":   key.Year,
		"month":  key.Month,
		"day":    key.Day,
	}, key, field)
}

func (d *MongoStatsDAO) IncrOwnedStat(ctx context.Context, ownerID string, key DateKey, field string) error {
	// 落在归属方自己的 user-stats 文档里，嵌套的 ownedStats 下
	return d.upsertIncr(ctx, d.userStats, bson.M{
		"userId": ownerID,
		"year":   key.Year,
		"month":  key.Month,
		"day":    key.Day,
	}, key, "ownedStats."+field)
}

func (d *MongoStatsDAO) IncrUserContentStat(ctx context.Context, contentID string, userID string, key DateKey, field string) error {
	return d.upsertIncr(ctx, d.userContentStats, bson.M{
		"contentId": contentID,
		"userId":    userID,
		"year":      key.Year,
		"month":     key.Month,
		"day":       key.Day,
	}, key, field)
}

func (d *MongoStatsDAO) IncrGroupStat(ctx context.Context, groupID string, key DateKey, field string) error {
	return d.upsertIncr(ctx, d.groupStats, bson.M{
		"groupId": groupID,
		"year":    key.Year,
		"month":   key.Month,
		"day":     key.Day,
	}, key, field)
}

func (d *MongoStatsDAO) IncrSystemStat(ctx context.Context, key DateKey, field string) error {
	return d.upsertIncr(ctx, d.systemStats, bson.M{
		"year":  key.Year,
		"month": key.Month,
		"day":   key.Day,
	}, key, field)
}

// upsertIncr 单文档原子自增，文档不存在就顺手建出来。
// date 每次都重新 $set 一遍，查询的时候就不用自己拼年月日了。
func (d *MongoStatsDAO) upsertIncr(ctx context.Context, col *mongo.Collection,
	filter bson.M, key DateKey, field string) error {
	_, err := col.UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{field: int64(1)},
		"$set": bson.M{"date": key.Date},
	}, options.Update().SetUpsert(true))
	return err
}
