package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	s3Mocks "mesa/infras/s3/mocks"
	restaurantMocks "mesa/internal/domains/restaurant/mocks"
	"mesa/internal/domains/restaurant/model"
	"mesa/internal/domains/restaurant/model/dto"
	"mesa/internal/domains/restaurant/service"
	cacheMocks "mesa/shared/cache/mocks"
	"mesa/shared/failure"
)

type restaurantFixture struct {
	repo         *restaurantMocks.MockRestaurant
	scheduleRepo *restaurantMocks.MockSchedule
	cache        *cacheMocks.MockRedisCache
	s3           *s3Mocks.MockS3
	svc          service.Restaurant
}

func newRestaurantFixture(ctrl *gomock.Controller) restaurantFixture {
	mockRepo := restaurantMocks.NewMockRestaurant(ctrl)
	mockScheduleRepo := restaurantMocks.NewMockSchedule(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	return restaurantFixture{
		repo:         mockRepo,
		scheduleRepo: mockScheduleRepo,
		cache:        mockCache,
		s3:           mockS3,
		svc:          service.New(mockRepo, mockScheduleRepo, cfg, mockCache, mockOtel, mockS3),
	}
}

func TestRestaurantService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRestaurantFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateRestaurantRequest
		setupMock func()
		wantCode  string
	}{
		{
			name: "name yields empty slug",
			req:  dto.CreateRestaurantRequest{Name: "!!!"},
			setupMock: func() {
				// Slug generation fails before any repository call.
			},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name: "slug taken probes next suffix",
			req:  dto.CreateRestaurantRequest{Name: "Test Bistro"},
			setupMock: func() {
				gomock.InOrder(
					f.repo.EXPECT().
						Exist(gomock.Any(), gomock.Any()).
						Return(true, nil),
					f.repo.EXPECT().
						Exist(gomock.Any(), gomock.Any()).
						Return(false, nil),
					f.repo.EXPECT().
						BeginTx(gomock.Any()).
						Return(nil, errors.New("database error")),
				)
			},
		},
		{
			name: "slug availability check error",
			req:  dto.CreateRestaurantRequest{Name: "Test Bistro"},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := f.svc.Create(context.Background(), tt.req)

			assert.Error(t, err)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestRestaurantService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRestaurantFixture(ctrl)

	restaurant := model.Restaurant{
		ID:       "8a7a44b6-6c9b-4a4a-9d2a-6cf39f6b7e01",
		Name:     "Test Bistro",
		Slug:     "test-bistro",
		IsActive: true,
	}

	tests := []struct {
		name      string
		idOrSlug  string
		setupMock func()
		wantErr   bool
	}{
		{
			name:     "cache miss, found by slug",
			idOrSlug: "test-bistro",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(restaurant, nil)

				f.scheduleRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Schedule{
						{DayOfWeek: 1, OpenTime: "09:00:00", CloseTime: "22:00:00"},
					}, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:     "cache miss, found by uuid",
			idOrSlug: "8a7a44b6-6c9b-4a4a-9d2a-6cf39f6b7e01",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(restaurant, nil)

				f.scheduleRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:     "cache hit",
			idOrSlug: "test-bistro",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:     "not found",
			idOrSlug: "missing-bistro",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Restaurant{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := f.svc.Get(context.Background(), tt.idOrSlug)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRestaurantService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRestaurantFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.UpdateRestaurantRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateRestaurantRequest{Name: "New Name"},
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
			req:  dto.UpdateRestaurantRequest{},
			setupMock: func() {
				// Rejected before any repository call.
			},
			wantErr: true,
		},
		{
			name: "restaurant not found",
			req:  dto.UpdateRestaurantRequest{Name: "New Name"},
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

			err := f.svc.Update(context.Background(), tt.req, "restaurant-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
