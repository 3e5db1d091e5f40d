package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	menuMocks "mesa/internal/domains/menu/mocks"
	"mesa/internal/domains/menu/model"
	"mesa/internal/domains/menu/model/dto"
	"mesa/internal/domains/menu/service"
	restaurantMocks "mesa/internal/domains/restaurant/mocks"
	cacheMocks "mesa/shared/cache/mocks"
)

type menuFixture struct {
	repo           *menuMocks.MockMenu
	itemRepo       *menuMocks.MockItem
	restaurantRepo *restaurantMocks.MockRestaurant
	cache          *cacheMocks.MockRedisCache
	svc            service.Menu
}

func newMenuFixture(ctrl *gomock.Controller) menuFixture {
	mockRepo := menuMocks.NewMockMenu(ctrl)
	mockItemRepo := menuMocks.NewMockItem(ctrl)
	mockRestaurantRepo := restaurantMocks.NewMockRestaurant(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return menuFixture{
		repo:           mockRepo,
		itemRepo:       mockItemRepo,
		restaurantRepo: mockRestaurantRepo,
		cache:          mockCache,
		svc:            service.New(mockRepo, mockItemRepo, mockRestaurantRepo, cfg, mockCache, mockOtel),
	}
}

func TestMenuService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMenuFixture(ctrl)

	req := dto.CreateMenuRequest{Name: "Dinner"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "restaurant not found",
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Create(context.Background(), "restaurant-1", req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Dinner", result.Name)
				assert.True(t, result.IsActive)
			}
		})
	}
}

func TestMenuService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMenuFixture(ctrl)

	menu := model.Menu{
		ID:           "menu-1",
		RestaurantID: "restaurant-1",
		Name:         "Dinner",
		IsActive:     true,
	}

	t.Run("menu with items", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(menu, nil)

		f.itemRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Item{
				{ID: "item-1", MenuID: "menu-1", Name: "Steak", Price: decimal.NewFromInt(25), Category: "mains"},
				{ID: "item-2", MenuID: "menu-1", Name: "Soup", Price: decimal.NewFromInt(8), Category: "starters"},
			}, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		result, err := f.svc.Get(context.Background(), "restaurant-1", "menu-1")

		assert.NoError(t, err)
		assert.Equal(t, "Dinner", result.Name)
		assert.Len(t, result.Items, 2)
	})

	t.Run("menu not found", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Menu{}, nil)

		_, err := f.svc.Get(context.Background(), "restaurant-1", "menu-1")

		assert.Error(t, err)
	})
}

func TestMenuService_CreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMenuFixture(ctrl)

	req := dto.CreateItemRequest{
		Name:     "Steak",
		Price:    decimal.NewFromInt(25),
		Category: "mains",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.itemRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				f.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "menu not found",
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.CreateItem(context.Background(), "restaurant-1", "menu-1", req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Steak", result.Name)
				assert.True(t, result.IsAvailable)
			}
		})
	}
}

func TestMenuService_UpdateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMenuFixture(ctrl)

	price := decimal.NewFromInt(30)

	tests := []struct {
		name      string
		req       dto.UpdateItemRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateItemRequest{Price: &price},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.itemRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.itemRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "item not found",
			req:  dto.UpdateItemRequest{Price: &price},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.itemRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.UpdateItem(context.Background(), tt.req, "restaurant-1", "menu-1", "item-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
