package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mesa/config"
	"mesa/infras/otel/mocks"
	restaurantMocks "mesa/internal/domains/restaurant/mocks"
	restaurantModel "mesa/internal/domains/restaurant/model"
	reviewMocks "mesa/internal/domains/review/mocks"
	"mesa/internal/domains/review/model"
	"mesa/internal/domains/review/model/dto"
	"mesa/internal/domains/review/service"
	cacheMocks "mesa/shared/cache/mocks"
	"mesa/shared/failure"
)

type reviewFixture struct {
	repo           *reviewMocks.MockReview
	restaurantRepo *restaurantMocks.MockRestaurant
	cache          *cacheMocks.MockRedisCache
	svc            service.Review
}

func newReviewFixture(ctrl *gomock.Controller) reviewFixture {
	mockRepo := reviewMocks.NewMockReview(ctrl)
	mockRestaurantRepo := restaurantMocks.NewMockRestaurant(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return reviewFixture{
		repo:           mockRepo,
		restaurantRepo: mockRestaurantRepo,
		cache:          mockCache,
		svc:            service.New(mockRepo, mockRestaurantRepo, cfg, mockCache, mockOtel),
	}
}

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReviewFixture(ctrl)

	req := dto.CreateReviewRequest{
		CustomerID:   "d94f0f5b-4a8e-4c10-9c55-0a19c6dcbb42",
		CustomerName: "Test Customer",
		Rating:       5,
		Comment:      "Great food",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  string
	}{
		{
			name: "restaurant not found",
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(restaurantModel.Restaurant{}, nil)
			},
			wantCode: "NOT_FOUND",
		},
		{
			name: "duplicate review",
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(restaurantModel.Restaurant{ID: "restaurant-1", Rating: 4, ReviewCount: 2}, nil)

				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantCode: "CONFLICT",
		},
		{
			name: "restaurant lookup error",
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(restaurantModel.Restaurant{}, errors.New("database error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := f.svc.Create(context.Background(), "restaurant-1", req)

			assert.Error(t, err)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestReviewService_Respond(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReviewFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful response",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Review{ID: "review-1", RestaurantID: "restaurant-1", Rating: 4}, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "review from another restaurant reads as not found",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Review{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Respond(context.Background(), "restaurant-1", "review-1", dto.RespondReviewRequest{Response: "thank you"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result.Response)
			}
		})
	}
}
