// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"mesa/config"
	"mesa/infras/kafka"
	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/infras/redis"
	"mesa/infras/s3"
	repository3 "mesa/internal/domains/booking/repository"
	service3 "mesa/internal/domains/booking/service"
	repository5 "mesa/internal/domains/menu/repository"
	service5 "mesa/internal/domains/menu/service"
	"mesa/internal/domains/restaurant/repository"
	"mesa/internal/domains/restaurant/service"
	repository4 "mesa/internal/domains/review/repository"
	service4 "mesa/internal/domains/review/service"
	repository2 "mesa/internal/domains/table/repository"
	service2 "mesa/internal/domains/table/service"
	"mesa/internal/handlers/booking"
	"mesa/internal/handlers/menu"
	"mesa/internal/handlers/restaurant"
	"mesa/internal/handlers/review"
	"mesa/internal/handlers/table"
	"mesa/shared/cache"
	"mesa/transport/http"
	"mesa/transport/http/middleware"
	"mesa/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryRestaurant := repository.New(connection, otelOtel)
	schedule := repository.NewSchedule(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceRestaurant := service.New(repositoryRestaurant, schedule, configConfig, redisCache, otelOtel, s3S3)
	handler := restaurant.New(serviceRestaurant, otelOtel)
	repositoryTable := repository2.New(connection, otelOtel)
	serviceTable := service2.New(repositoryTable, repositoryRestaurant, configConfig, redisCache, otelOtel)
	tableHandler := table.New(serviceTable, otelOtel)
	reservation := repository3.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service3.New(reservation, repositoryTable, repositoryRestaurant, configConfig, redisCache, otelOtel, kafkaClient)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	repositoryReview := repository4.New(connection, otelOtel)
	serviceReview := service4.New(repositoryReview, repositoryRestaurant, configConfig, redisCache, otelOtel)
	reviewHandler := review.New(serviceReview, otelOtel)
	repositoryMenu := repository5.New(connection, otelOtel)
	item := repository5.NewItem(connection, otelOtel)
	serviceMenu := service5.New(repositoryMenu, item, repositoryRestaurant, configConfig, redisCache, otelOtel)
	menuHandler := menu.New(serviceMenu, otelOtel)
	domainHandlers := router.DomainHandlers{
		Restaurant: handler,
		Table:      tableHandler,
		Booking:    bookingHandler,
		Review:     reviewHandler,
		Menu:       menuHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, connection, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var restaurantDomain = wire.NewSet(repository.New, repository.NewSchedule, service.New)

var tableDomain = wire.NewSet(repository2.New, service2.New)

var bookingDomain = wire.NewSet(repository3.New, service3.New)

var reviewDomain = wire.NewSet(repository4.New, service4.New)

var menuDomain = wire.NewSet(repository5.New, repository5.NewItem, service5.New)

var domains = wire.NewSet(
	restaurantDomain,
	tableDomain,
	bookingDomain,
	reviewDomain,
	menuDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), restaurant.New, table.New, booking.New, review.New, menu.New, router.New)
