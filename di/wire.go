//go:build wireinject
// +build wireinject

package di

import (
	"mesa/config"
	"mesa/infras/kafka"
	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/infras/redis"
	"mesa/infras/s3"
	bookingHandler "mesa/internal/handlers/booking"
	menuHandler "mesa/internal/handlers/menu"
	restaurantHandler "mesa/internal/handlers/restaurant"
	reviewHandler "mesa/internal/handlers/review"
	tableHandler "mesa/internal/handlers/table"
	"mesa/shared/cache"
	"mesa/transport/http"
	"mesa/transport/http/middleware"
	"mesa/transport/http/router"

	bookingRepository "mesa/internal/domains/booking/repository"
	bookingService "mesa/internal/domains/booking/service"
	menuRepository "mesa/internal/domains/menu/repository"
	menuService "mesa/internal/domains/menu/service"
	restaurantRepository "mesa/internal/domains/restaurant/repository"
	restaurantService "mesa/internal/domains/restaurant/service"
	reviewRepository "mesa/internal/domains/review/repository"
	reviewService "mesa/internal/domains/review/service"
	tableRepository "mesa/internal/domains/table/repository"
	tableService "mesa/internal/domains/table/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var restaurantDomain = wire.NewSet(
	restaurantRepository.New,
	restaurantRepository.NewSchedule,
	restaurantService.New,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuRepository.NewItem,
	menuService.New,
)

var domains = wire.NewSet(
	restaurantDomain,
	tableDomain,
	bookingDomain,
	reviewDomain,
	menuDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	restaurantHandler.New,
	tableHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	menuHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
