package service

import (
	"context"
	"fmt"
	"mesa/config"
	"mesa/infras/otel"
	"mesa/internal/domains/menu/model"
	"mesa/internal/domains/menu/model/dto"
	"mesa/internal/domains/menu/repository"
	restaurantModel "mesa/internal/domains/restaurant/model"
	restaurantRepo "mesa/internal/domains/restaurant/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetMenu    = "menu:get"
	cacheGetAllMenu = "menu:gets"
	cacheCountMenu  = "menu:count"
)

type Menu interface {
	Create(ctx context.Context, restaurantID string, req dto.CreateMenuRequest) (dto.MenuResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMenusResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, restaurantID, id string) (dto.MenuResponse, error)
	Update(ctx context.Context, req dto.UpdateMenuRequest, restaurantID, id string) error
	Delete(ctx context.Context, restaurantID, id string) error
	CreateItem(ctx context.Context, restaurantID, menuID string, req dto.CreateItemRequest) (dto.ItemResponse, error)
	UpdateItem(ctx context.Context, req dto.UpdateItemRequest, restaurantID, menuID, itemID string) error
	DeleteItem(ctx context.Context, restaurantID, menuID, itemID string) error
}

type serviceImpl struct {
	repo           repository.Menu
	itemRepo       repository.Item
	restaurantRepo restaurantRepo.Restaurant
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(repo repository.Menu, itemRepo repository.Item, restaurantRepo restaurantRepo.Restaurant, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Menu {
	return &serviceImpl{
		repo:           repo,
		itemRepo:       itemRepo,
		restaurantRepo: restaurantRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, restaurantID string, req dto.CreateMenuRequest) (res dto.MenuResponse, err error) {
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

	menu := req.ToModel(restaurantID)

	if err = s.repo.Insert(ctx, menu); err != nil {
		log.Error().Err(err).Msg("failed to create menu")

		return res, fmt.Errorf("failed to create menu: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMenu)
		shared.InvalidateCaches(c, s.cache, cacheCountMenu)
	}()

	res.FromModel(menu, nil)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMenusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMenu, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for menus")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count menus")

		return res, fmt.Errorf("failed to count menus: %w", err)
	}

	menus, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menus")

		return res, fmt.Errorf("failed to get menus: %w", err)
	}

	res.FromModels(menus, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menus to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMenu, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for menu count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count menus")

		return total, fmt.Errorf("failed to count menus: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu count to cache")
		}
	}()

	return total, nil
}

// Get returns one menu with its items, ordered by category then name.
func (s *serviceImpl) Get(ctx context.Context, restaurantID, id string) (res dto.MenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMenu, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil && res.RestaurantID == restaurantID {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for menu")

		return res, nil
	}

	menu, err := s.repo.Get(ctx, s.menuFilter(restaurantID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu")

		return res, fmt.Errorf("failed to get menu: %w", err)
	}

	if menu.ID == constant.Empty {
		return res, failure.NotFound("menu not found") // nolint:wrapcheck
	}

	items, err := s.itemRepo.GetAll(ctx, gDto.QueryParams{
		Page:    1,
		Limit:   constant.MaxMenuItems,
		SortBy:  model.ItemFieldCategory,
		SortDir: "ASC",
	}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.ItemFieldMenuID,
				Value:    menu.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, fmt.Errorf("failed to get menu items: %w", err)
	}

	res.FromModel(menu, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMenuRequest, restaurantID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMenuRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := s.menuFilter(restaurantID, id)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu exists")

		return fmt.Errorf("failed to check if menu exists: %w", err)
	}

	if !exist {
		log.Error().Msg("menu not found")

		return failure.NotFound("menu not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update menu")

		return fmt.Errorf("failed to update menu: %w", err)
	}

	s.invalidateMenu(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, restaurantID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.menuFilter(restaurantID, id)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu exists")

		return fmt.Errorf("failed to check if menu exists: %w", err)
	}

	if !exist {
		log.Error().Msg("menu not found")

		return failure.NotFound("menu not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete menu")

		return fmt.Errorf("failed to delete menu: %w", err)
	}

	s.invalidateMenu(ctx, id)

	return nil
}

func (s *serviceImpl) CreateItem(ctx context.Context, restaurantID, menuID string, req dto.CreateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	menuExists, err := s.repo.Exist(ctx, s.menuFilter(restaurantID, menuID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu exists")

		return res, fmt.Errorf("failed to check if menu exists: %w", err)
	}

	if !menuExists {
		return res, failure.NotFound("menu not found") // nolint:wrapcheck
	}

	item := req.ToModel(menuID)

	if err = s.itemRepo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create menu item")

		return res, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.invalidateMenu(ctx, menuID)

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) UpdateItem(ctx context.Context, req dto.UpdateItemRequest, restaurantID, menuID, itemID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	menuExists, err := s.repo.Exist(ctx, s.menuFilter(restaurantID, menuID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu exists")

		return fmt.Errorf("failed to check if menu exists: %w", err)
	}

	if !menuExists {
		return failure.NotFound("menu not found") // nolint:wrapcheck
	}

	filter := s.itemFilter(menuID, itemID)

	exist, err := s.itemRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu item exists")

		return fmt.Errorf("failed to check if menu item exists: %w", err)
	}

	if !exist {
		log.Error().Msg("menu item not found")

		return failure.NotFound("menu item not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if err = s.itemRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update menu item")

		return fmt.Errorf("failed to update menu item: %w", err)
	}

	s.invalidateMenu(ctx, menuID)

	return nil
}

func (s *serviceImpl) DeleteItem(ctx context.Context, restaurantID, menuID, itemID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	menuExists, err := s.repo.Exist(ctx, s.menuFilter(restaurantID, menuID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu exists")

		return fmt.Errorf("failed to check if menu exists: %w", err)
	}

	if !menuExists {
		return failure.NotFound("menu not found") // nolint:wrapcheck
	}

	filter := s.itemFilter(menuID, itemID)

	exist, err := s.itemRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu item exists")

		return fmt.Errorf("failed to check if menu item exists: %w", err)
	}

	if !exist {
		log.Error().Msg("menu item not found")

		return failure.NotFound("menu item not found") // nolint:wrapcheck
	}

	if err = s.itemRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete menu item")

		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	s.invalidateMenu(ctx, menuID)

	return nil
}

func (s *serviceImpl) invalidateMenu(ctx context.Context, menuID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMenu, menuID)); err != nil {
			log.Error().Err(err).Msg("failed to delete menu from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMenu)
		shared.InvalidateCaches(c, s.cache, cacheCountMenu)
	}()
}

func (s *serviceImpl) menuFilter(restaurantID, id string) gDto.FilterGroup {
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

func (s *serviceImpl) itemFilter(menuID, itemID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    itemID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
			gDto.Filter{
				Field:    model.ItemFieldMenuID,
				Value:    menuID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ItemTableName,
			},
		},
	}
}
