package ioc

import (
	"github.com/eweware/HeardActivityProcessor/pkg/queuex"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func InitRedis() redis.Cmdable {
	addr := viper.GetString("redis.addr")
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func InitQueue(client redis.Cmdable) queuex.Queue {
	type Config struct {
		Name string `yaml:"name"`
	}
	cfg := Config{
		Name: "activity_queue",
	}
	err := viper.UnmarshalKey("queue", &cfg)
	if err != nil {
		panic(err)
	}
	return queuex.NewRedisQueue(client, cfg.Name)
}
