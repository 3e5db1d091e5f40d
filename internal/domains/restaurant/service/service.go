package service

import (
	"context"
	"fmt"
	"mesa/config"
	"mesa/infras/otel"
	"mesa/infras/s3"
	"mesa/internal/domains/restaurant/model"
	"mesa/internal/domains/restaurant/model/dto"
	"mesa/internal/domains/restaurant/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRestaurant    = "restaurant:get"
	cacheGetAllRestaurant = "restaurant:gets"
	cacheCountRestaurant  = "restaurant:count"

	maxSlugAttempts = 100
)

type Restaurant interface {
	Create(ctx context.Context, req dto.CreateRestaurantRequest) (dto.RestaurantResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRestaurantsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, idOrSlug string) (dto.RestaurantResponse, error)
	Update(ctx context.Context, req dto.UpdateRestaurantRequest, id string) error
	UploadLogo(ctx context.Context, id string, req dto.UploadLogoRequest) (dto.UploadLogoResponse, error)
	UploadCover(ctx context.Context, id string, req dto.UploadLogoRequest) (dto.UploadLogoResponse, error)
}

type serviceImpl struct {
	repo         repository.Restaurant
	scheduleRepo repository.Schedule
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(repo repository.Restaurant, scheduleRepo repository.Schedule, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Restaurant {
	return &serviceImpl{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRestaurantRequest) (res dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	slug, err := s.generateSlug(ctx, req.Name)
	if err != nil {
		return res, err
	}

	restaurant := req.ToModel(slug)
	schedules := req.ToScheduleModels(restaurant.ID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin restaurant transaction")

		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback restaurant transaction")
			}
		}
	}()

	if err = s.repo.InsertTx(ctx, tx, restaurant); err != nil {
		log.Error().Err(err).Msg("failed to create restaurant")

		return res, fmt.Errorf("failed to create restaurant: %w", err)
	}

	if len(schedules) > 0 {
		if err = s.scheduleRepo.InsertBulkTx(ctx, tx, schedules); err != nil {
			log.Error().Err(err).Msg("failed to create restaurant schedules")

			return res, fmt.Errorf("failed to create restaurant schedules: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit restaurant transaction")

		return res, fmt.Errorf("failed to commit transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRestaurant)
		shared.InvalidateCaches(c, s.cache, cacheCountRestaurant)
	}()

	res.FromModel(restaurant, schedules)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRestaurantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRestaurant, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurants")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count restaurants")

		return res, fmt.Errorf("failed to count restaurants: %w", err)
	}

	restaurants, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurants")

		return res, fmt.Errorf("failed to get restaurants: %w", err)
	}

	res.FromModels(restaurants, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurants to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRestaurant, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurant count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count restaurants")

		return total, fmt.Errorf("failed to count restaurants: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, idOrSlug string) (res dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRestaurant, idOrSlug)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurant")

		return res, nil
	}

	field := model.FieldSlug
	if _, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		field = model.FieldID
	}

	restaurant, err := s.repo.Get(ctx, shared.FilterByID(idOrSlug, field, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return res, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant.ID == constant.Empty {
		return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	schedules, err := s.scheduleRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.ScheduleFieldDayOfWeek, SortDir: gDto.SortDirAsc},
		shared.FilterByID(restaurant.ID, model.ScheduleFieldRestaurantID, model.ScheduleTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant schedules")

		return res, fmt.Errorf("failed to get restaurant schedules: %w", err)
	}

	res.FromModel(restaurant, schedules)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRestaurantRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRestaurantRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if restaurant exists")

		return fmt.Errorf("failed to check if restaurant exists: %w", err)
	}

	if !exist {
		log.Error().Msg("restaurant not found")

		return failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update restaurant")

		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRestaurant, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete restaurant from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRestaurant)
		shared.InvalidateCaches(c, s.cache, cacheCountRestaurant)
	}()

	return nil
}

func (s *serviceImpl) UploadLogo(ctx context.Context, id string, req dto.UploadLogoRequest) (res dto.UploadLogoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadLogo")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.uploadImage(ctx, id, req, model.FieldLogoURL)
}

func (s *serviceImpl) UploadCover(ctx context.Context, id string, req dto.UploadLogoRequest) (res dto.UploadLogoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadCover")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.uploadImage(ctx, id, req, model.FieldCoverURL)
}

func (s *serviceImpl) uploadImage(ctx context.Context, id string, req dto.UploadLogoRequest, column string) (res dto.UploadLogoResponse, err error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if restaurant exists")

		return res, fmt.Errorf("failed to check if restaurant exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.LogoFile, req.Logo, req.Logo.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload restaurant image to S3")

		return res, fmt.Errorf("failed to upload restaurant image to S3: %w", err)
	}

	if err = s.repo.Update(ctx, map[string]any{column: url}, filter); err != nil {
		log.Error().Err(err).Msg("failed to store restaurant image url")

		return res, fmt.Errorf("failed to store restaurant image url: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRestaurant, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete restaurant from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRestaurant)
	}()

	res.FromModel(url, req.Logo.Filename)

	return res, nil
}

// generateSlug derives a unique slug from the restaurant name, probing with a
// numeric suffix until a free one is found.
func (s *serviceImpl) generateSlug(ctx context.Context, name string) (string, error) {
	base := shared.Slugify(name)
	if base == constant.Empty {
		return constant.Empty, failure.BadRequestFromString("restaurant name yields an empty slug") // nolint:wrapcheck
	}

	for attempt := range maxSlugAttempts {
		candidate := base
		if attempt > 0 {
			candidate = fmt.Sprintf("%s-%d", base, attempt)
		}

		exist, err := s.repo.Exist(ctx, shared.FilterByID(candidate, model.FieldSlug, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check slug availability")

			return constant.Empty, fmt.Errorf("failed to check slug availability: %w", err)
		}

		if !exist {
			return candidate, nil
		}
	}

	return constant.Empty, failure.Conflict("could not generate a unique slug") // nolint:wrapcheck
}
