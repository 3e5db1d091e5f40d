package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	restaurantMocks "mesa/internal/domains/restaurant/mocks"
	tableMocks "mesa/internal/domains/table/mocks"
	"mesa/internal/domains/table/model"
	"mesa/internal/domains/table/model/dto"
	"mesa/internal/domains/table/service"
	cacheMocks "mesa/shared/cache/mocks"
	"mesa/shared/failure"
)

type tableFixture struct {
	repo           *tableMocks.MockTable
	restaurantRepo *restaurantMocks.MockRestaurant
	cache          *cacheMocks.MockRedisCache
	svc            service.Table
}

func newTableFixture(ctrl *gomock.Controller) tableFixture {
	mockRepo := tableMocks.NewMockTable(ctrl)
	mockRestaurantRepo := restaurantMocks.NewMockRestaurant(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return tableFixture{
		repo:           mockRepo,
		restaurantRepo: mockRestaurantRepo,
		cache:          mockCache,
		svc:            service.New(mockRepo, mockRestaurantRepo, cfg, mockCache, mockOtel),
	}
}

func TestTableService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTableFixture(ctrl)

	req := dto.CreateTableRequest{
		TableNumber: "T1",
		Capacity:    4,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  string
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
			wantErr:  true,
			wantCode: "NOT_FOUND",
		},
		{
			name: "duplicate table number",
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505"})
			},
			wantErr:  true,
			wantCode: "CONFLICT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Create(context.Background(), "restaurant-1", req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != "" {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "T1", result.TableNumber)
				assert.True(t, result.IsBookable)
			}
		})
	}
}

func TestTableService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTableFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache miss, found",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Table{ID: "table-1", RestaurantID: "restaurant-1", TableNumber: "T1"}, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "table from another restaurant reads as not found",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Table{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := f.svc.Get(context.Background(), "restaurant-1", "table-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTableService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTableFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.UpdateTableRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateTableRequest{Capacity: 6},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
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
			name: "empty update request",
			req:  dto.UpdateTableRequest{},
			setupMock: func() {
				// Rejected before any repository call.
			},
			wantErr: true,
		},
		{
			name: "table not found",
			req:  dto.UpdateTableRequest{Capacity: 6},
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

			err := f.svc.Update(context.Background(), tt.req, "restaurant-1", "table-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTableService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTableFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
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
			name: "table not found",
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

			err := f.svc.Delete(context.Background(), "restaurant-1", "table-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
