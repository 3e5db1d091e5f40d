package service

import (
	"context"
	"fmt"
	"mesa/config"
	"mesa/infras/otel"
	restaurantModel "mesa/internal/domains/restaurant/model"
	restaurantRepo "mesa/internal/domains/restaurant/repository"
	"mesa/internal/domains/table/model"
	"mesa/internal/domains/table/model/dto"
	"mesa/internal/domains/table/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetTable    = "table:get"
	cacheGetAllTable = "table:gets"
	cacheCountTable  = "table:count"
)

type Table interface {
	Create(ctx context.Context, restaurantID string, req dto.CreateTableRequest) (dto.TableResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTablesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, restaurantID, id string) (dto.TableResponse, error)
	Update(ctx context.Context, req dto.UpdateTableRequest, restaurantID, id string) error
	Delete(ctx context.Context, restaurantID, id string) error
}

type serviceImpl struct {
	repo           repository.Table
	restaurantRepo restaurantRepo.Restaurant
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(repo repository.Table, restaurantRepo restaurantRepo.Restaurant, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Table {
	return &serviceImpl{
		repo:           repo,
		restaurantRepo: restaurantRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, restaurantID string, req dto.CreateTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	restaurantExists, err := s.restaurantRepo.Exist(ctx, shared.FilterByID(restaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if restaurant exists")

		return res, fmt.Errorf("failed to check if restaurant exists: %w", err)
	}

	if !restaurantExists {
		return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	table := req.ToModel(restaurantID)

	if err = s.repo.Insert(ctx, table); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("table number already exists for this restaurant") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create table")

		return res, fmt.Errorf("failed to create table: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTable)
		shared.InvalidateCaches(c, s.cache, cacheCountTable)
	}()

	res.FromModel(table)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTable, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tables")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tables")

		return res, fmt.Errorf("failed to count tables: %w", err)
	}

	tables, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	res.FromModels(tables, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tables to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTable, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for table count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tables")

		return total, fmt.Errorf("failed to count tables: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save table count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, restaurantID, id string) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTable, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil && res.RestaurantID == restaurantID {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for table")

		return res, nil
	}

	table, err := s.repo.Get(ctx, s.scopedFilter(restaurantID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == constant.Empty {
		return res, failure.NotFound("table not found") // nolint:wrapcheck
	}

	res.FromModel(table)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save table to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTableRequest, restaurantID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTableRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := s.scopedFilter(restaurantID, id)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if table exists")

		return fmt.Errorf("failed to check if table exists: %w", err)
	}

	if !exist {
		log.Error().Msg("table not found")

		return failure.NotFound("table not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update table")

		return fmt.Errorf("failed to update table: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTable, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete table from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTable)
		shared.InvalidateCaches(c, s.cache, cacheCountTable)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, restaurantID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.scopedFilter(restaurantID, id)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if table exists")

		return fmt.Errorf("failed to check if table exists: %w", err)
	}

	if !exist {
		log.Error().Msg("table not found")

		return failure.NotFound("table not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete table")

		return fmt.Errorf("failed to delete table: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTable, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete table from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTable)
		shared.InvalidateCaches(c, s.cache, cacheCountTable)
	}()

	return nil
}

func (s *serviceImpl) scopedFilter(restaurantID, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Value:    restaurantID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
