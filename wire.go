//go:build wireinject

package main

import (
	"github.com/eweware/HeardActivityProcessor/internal/events"
	"github.com/eweware/HeardActivityProcessor/internal/repository"
	"github.com/eweware/HeardActivityProcessor/internal/repository/dao"
	"github.com/eweware/HeardActivityProcessor/internal/service"
	"github.com/eweware/HeardActivityProcessor/ioc"
	"github.com/google/wire"
)

var thirdPartySet = wire.NewSet(
	ioc.InitLogger,
	ioc.InitRedis,
	ioc.InitMongo,
	ioc.InitQueue,
)

var statsSvcProvider = wire.NewSet(
	service.NewStatsService,
	repository.NewStatsRepository,
	repository.NewWhatsNewRepository,
	repository.NewContentRepository,
	repository.NewActivityRepository,
	dao.NewMongoStatsDAO,
	dao.NewMongoWhatsNewDAO,
	dao.NewMongoContentDAO,
	dao.NewMongoActivityDAO,
)

func InitApp() *App {
	wire.Build(
		thirdPartySet,
		statsSvcProvider,
		events.NewActivityEventConsumer,
		ioc.NewConsumers,
		wire.Struct(new(App), "*"),
	)
	return new(App)
}
