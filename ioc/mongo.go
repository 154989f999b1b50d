package ioc

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func InitMongo() *mongo.Database {
	type Config struct {
		URI string `yaml:"uri"`
		DB  string `yaml:"db"`
	}
	// 默认值指向本地，线上靠配置文件覆盖
	cfg := Config{
		URI: "mongodb://localhost:27017",
		DB:  "heard",
	}
	err := viper.UnmarshalKey("mongo", &cfg)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		panic(err)
	}
	return client.Database(cfg.DB)
}
