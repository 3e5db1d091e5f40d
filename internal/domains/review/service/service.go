package service

import (
	"context"
	"fmt"
	"mesa/config"
	"mesa/infras/otel"
	restaurantModel "mesa/internal/domains/restaurant/model"
	restaurantRepo "mesa/internal/domains/restaurant/repository"
	"mesa/internal/domains/review/model"
	"mesa/internal/domains/review/model/dto"
	"mesa/internal/domains/review/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/timezone"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllReview = "review:gets"
	cacheCountReview  = "review:count"

	cacheGetRestaurant    = "restaurant:get"
	cacheGetAllRestaurant = "restaurant:gets"
)

type Review interface {
	Create(ctx context.Context, restaurantID string, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Respond(ctx context.Context, restaurantID, id string, req dto.RespondReviewRequest) (dto.ReviewResponse, error)
}

type serviceImpl struct {
	repo           repository.Review
	restaurantRepo restaurantRepo.Restaurant
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(repo repository.Review, restaurantRepo restaurantRepo.Restaurant, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:           repo,
		restaurantRepo: restaurantRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

// Create stores a review and folds its rating into the restaurant's running
// average in the same transaction, so the aggregate never drifts from the
// review rows.
func (s *serviceImpl) Create(ctx context.Context, restaurantID string, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	restaurant, err := s.restaurantRepo.Get(ctx, shared.FilterByID(restaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return res, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant.ID == constant.Empty {
		return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	alreadyReviewed, err := s.repo.Exist(ctx, customerReviewFilter(restaurantID, req.CustomerID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if review exists")

		return res, fmt.Errorf("failed to check if review exists: %w", err)
	}

	if alreadyReviewed {
		return res, failure.Conflict("customer has already reviewed this restaurant") // nolint:wrapcheck
	}

	review := req.ToModel(restaurantID)

	newCount := restaurant.ReviewCount + 1
	newRating := (restaurant.Rating*float64(restaurant.ReviewCount) + float64(req.Rating)) / float64(newCount)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin review transaction")

		return res, fmt.Errorf("failed to begin review transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback review transaction")
			}
		}
	}()

	if err = s.repo.InsertTx(ctx, tx, review); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("customer has already reviewed this restaurant") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	updatedFields := map[string]any{
		restaurantModel.FieldRating:      newRating,
		restaurantModel.FieldReviewCount: newCount,
		constant.FieldModifiedAt:         timezone.Now(),
	}

	if err = s.restaurantRepo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(restaurantID, restaurantModel.FieldID, restaurantModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update restaurant rating")

		return res, fmt.Errorf("failed to update restaurant rating: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit review transaction")

		return res, fmt.Errorf("failed to commit review transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)
		shared.InvalidateCaches(c, s.cache, cacheGetRestaurant)
		shared.InvalidateCaches(c, s.cache, cacheGetAllRestaurant)
	}()

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reviews")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	reviews, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(reviews, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReview, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for review count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return total, fmt.Errorf("failed to count reviews: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save review count to cache")
		}
	}()

	return total, nil
}

// Respond attaches the restaurant's reply to a review. Responding again
// overwrites the previous reply.
func (s *serviceImpl) Respond(ctx context.Context, restaurantID, id string, req dto.RespondReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Respond")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
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

	review, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return res, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return res, failure.NotFound("review not found") // nolint:wrapcheck
	}

	respondedAt := timezone.Now()

	updatedFields := map[string]any{
		model.FieldResponse:      req.Response,
		model.FieldRespondedAt:   respondedAt,
		constant.FieldModifiedAt: respondedAt,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to respond to review")

		return res, fmt.Errorf("failed to respond to review: %w", err)
	}

	review.Response = &req.Response
	review.RespondedAt = &respondedAt

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
	}()

	res.FromModel(review)

	return res, nil
}

func customerReviewFilter(restaurantID, customerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Value:    restaurantID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCustomerID,
				Value:    customerID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
