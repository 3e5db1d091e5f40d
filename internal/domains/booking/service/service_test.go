package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"mesa/config"
	kafkaMocks "mesa/infras/kafka/mocks"
	"mesa/infras/otel/mocks"
	bookingMocks "mesa/internal/domains/booking/mocks"
	"mesa/internal/domains/booking/model"
	"mesa/internal/domains/booking/model/dto"
	"mesa/internal/domains/booking/service"
	restaurantMocks "mesa/internal/domains/restaurant/mocks"
	tableMocks "mesa/internal/domains/table/mocks"
	tableModel "mesa/internal/domains/table/model"
	cacheMocks "mesa/shared/cache/mocks"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/timezone"
)

type bookingFixture struct {
	repo           *bookingMocks.MockReservation
	tableRepo      *tableMocks.MockTable
	restaurantRepo *restaurantMocks.MockRestaurant
	cache          *cacheMocks.MockRedisCache
	kafka          *kafkaMocks.MockClient
	svc            service.Booking
}

func newBookingFixture(ctrl *gomock.Controller) bookingFixture {
	mockRepo := bookingMocks.NewMockReservation(ctrl)
	mockTableRepo := tableMocks.NewMockTable(ctrl)
	mockRestaurantRepo := restaurantMocks.NewMockRestaurant(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return bookingFixture{
		repo:           mockRepo,
		tableRepo:      mockTableRepo,
		restaurantRepo: mockRestaurantRepo,
		cache:          mockCache,
		kafka:          mockKafka,
		svc:            service.New(mockRepo, mockTableRepo, mockRestaurantRepo, cfg, mockCache, mockOtel, mockKafka),
	}
}

func bookableTables() []tableModel.Table {
	return []tableModel.Table{
		{ID: "table-1", Capacity: 2, IsBookable: true},
		{ID: "table-2", Capacity: 4, IsBookable: true},
		{ID: "table-3", Capacity: 6, IsBookable: true},
	}
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	tests := []struct {
		name       string
		req        dto.AvailabilityRequest
		setupMock  func()
		wantErr    bool
		wantSlots  int
		wantFirst  dto.AvailabilitySlot
		wantTimes  []string
		checkSlots bool
	}{
		{
			name: "restaurant not found",
			req: dto.AvailabilityRequest{
				ReservationDate: "2026-09-10",
				ReservationTime: "19:00",
				PartySize:       2,
			},
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "available slot surrounded by suggestions",
			req: dto.AvailabilityRequest{
				ReservationDate: "2026-09-10",
				ReservationTime: "19:00",
				PartySize:       4,
			},
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					OccupiedTableIDs(gomock.Any(), "restaurant-1", "2026-09-10", "19:00").
					Return([]string{"table-2"}, nil)

				f.tableRepo.EXPECT().
					ListBookable(gomock.Any(), "restaurant-1").
					Return(bookableTables(), nil)
			},
			wantErr:   false,
			wantSlots: 3,
			wantFirst: dto.AvailabilitySlot{
				Time:                "19:00",
				IsAvailable:         true,
				AvailableTableCount: 1,
			},
			wantTimes:  []string{"19:00", "18:45", "19:15"},
			checkSlots: true,
		},
		{
			name: "no capacity keeps suggestions optimistic",
			req: dto.AvailabilityRequest{
				ReservationDate: "2026-09-10",
				ReservationTime: "20:00",
				PartySize:       8,
			},
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					OccupiedTableIDs(gomock.Any(), "restaurant-1", "2026-09-10", "20:00").
					Return(nil, nil)

				f.tableRepo.EXPECT().
					ListBookable(gomock.Any(), "restaurant-1").
					Return(bookableTables(), nil)
			},
			wantErr:   false,
			wantSlots: 3,
			wantFirst: dto.AvailabilitySlot{
				Time:                "20:00",
				IsAvailable:         false,
				AvailableTableCount: 0,
			},
			wantTimes:  []string{"20:00", "19:45", "20:15"},
			checkSlots: true,
		},
		{
			name: "requested table occupied",
			req: dto.AvailabilityRequest{
				ReservationDate: "2026-09-10",
				ReservationTime: "19:00",
				PartySize:       2,
				TableID:         "table-2",
			},
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					OccupiedTableIDs(gomock.Any(), "restaurant-1", "2026-09-10", "19:00").
					Return([]string{"table-2"}, nil)

				f.tableRepo.EXPECT().
					ListBookable(gomock.Any(), "restaurant-1").
					Return(bookableTables(), nil)
			},
			wantErr:   false,
			wantSlots: 3,
			wantFirst: dto.AvailabilitySlot{
				Time:                "19:00",
				IsAvailable:         false,
				AvailableTableCount: 2,
			},
			checkSlots: true,
		},
		{
			name: "occupied lookup error",
			req: dto.AvailabilityRequest{
				ReservationDate: "2026-09-10",
				ReservationTime: "19:00",
				PartySize:       2,
			},
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					OccupiedTableIDs(gomock.Any(), "restaurant-1", "2026-09-10", "19:00").
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.CheckAvailability(context.Background(), "restaurant-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, result.Slots, tt.wantSlots)

			if !tt.checkSlots {
				return
			}

			primary := result.Slots[0]
			assert.Equal(t, tt.wantFirst.Time, primary.Time)
			assert.Equal(t, tt.wantFirst.IsAvailable, primary.IsAvailable)
			assert.Equal(t, tt.wantFirst.AvailableTableCount, primary.AvailableTableCount)
			assert.False(t, primary.Suggested)

			for _, slot := range result.Slots[1:] {
				assert.True(t, slot.Suggested)
				assert.True(t, slot.IsAvailable)
				assert.Equal(t, tt.wantFirst.AvailableTableCount, slot.AvailableTableCount)
			}

			if len(tt.wantTimes) > 0 {
				times := make([]string, len(result.Slots))
				for i, slot := range result.Slots {
					times[i] = slot.Time
				}

				assert.Equal(t, tt.wantTimes, times)
			}
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	req := dto.CreateReservationRequest{
		RestaurantID:    "restaurant-1",
		CustomerID:      "customer-1",
		CustomerName:    "Test Customer",
		PartySize:       2,
		ReservationDate: "2026-09-10",
		ReservationTime: "19:00",
	}

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantCode   string
		wantNumber string
	}{
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
			name: "slot fully booked",
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					OccupiedTableIDs(gomock.Any(), "restaurant-1", "2026-09-10", "19:00").
					Return([]string{"table-1", "table-2", "table-3"}, nil)

				f.tableRepo.EXPECT().
					ListBookable(gomock.Any(), "restaurant-1").
					Return(bookableTables(), nil)
			},
			wantErr:  true,
			wantCode: "RESERVATION_NOT_AVAILABLE",
		},
		{
			name: "exist check error",
			setupMock: func() {
				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "reservation created through the serializable transaction",
			setupMock: func() {
				tx := bookingMocks.NewMockTx(ctrl)

				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					OccupiedTableIDs(gomock.Any(), "restaurant-1", "2026-09-10", "19:00").
					Return(nil, nil)

				f.tableRepo.EXPECT().
					ListBookable(gomock.Any(), "restaurant-1").
					Return(bookableTables(), nil).
					Times(2)

				f.repo.EXPECT().
					BeginSerializableTx(gomock.Any()).
					Return(tx, nil)

				f.repo.EXPECT().
					OccupiedTableIDsTx(gomock.Any(), tx, "restaurant-1", "2026-09-10", "19:00").
					Return(nil, nil)

				f.repo.EXPECT().
					NextReservationNumber(gomock.Any(), tx).
					Return(int64(42), nil)

				f.repo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)

				tx.EXPECT().
					Commit().
					Return(nil)

				f.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantNumber: "RES-000042",
		},
		{
			name: "slot lost between check and transaction",
			setupMock: func() {
				tx := bookingMocks.NewMockTx(ctrl)

				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					OccupiedTableIDs(gomock.Any(), "restaurant-1", "2026-09-10", "19:00").
					Return(nil, nil)

				f.tableRepo.EXPECT().
					ListBookable(gomock.Any(), "restaurant-1").
					Return(bookableTables(), nil).
					Times(2)

				f.repo.EXPECT().
					BeginSerializableTx(gomock.Any()).
					Return(tx, nil)

				f.repo.EXPECT().
					OccupiedTableIDsTx(gomock.Any(), tx, "restaurant-1", "2026-09-10", "19:00").
					Return([]string{"table-1", "table-2", "table-3"}, nil)

				tx.EXPECT().
					Rollback().
					Return(nil)
			},
			wantErr:  true,
			wantCode: "RESERVATION_NOT_AVAILABLE",
		},
		{
			name: "unique index backstop reads as slot taken",
			setupMock: func() {
				tx := bookingMocks.NewMockTx(ctrl)

				f.restaurantRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					OccupiedTableIDs(gomock.Any(), "restaurant-1", "2026-09-10", "19:00").
					Return(nil, nil)

				f.tableRepo.EXPECT().
					ListBookable(gomock.Any(), "restaurant-1").
					Return(bookableTables(), nil).
					Times(2)

				f.repo.EXPECT().
					BeginSerializableTx(gomock.Any()).
					Return(tx, nil)

				f.repo.EXPECT().
					OccupiedTableIDsTx(gomock.Any(), tx, "restaurant-1", "2026-09-10", "19:00").
					Return(nil, nil)

				f.repo.EXPECT().
					NextReservationNumber(gomock.Any(), tx).
					Return(int64(43), nil)

				f.repo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(&pq.Error{Code: "23505"})

				tx.EXPECT().
					Rollback().
					Return(nil)
			},
			wantErr:  true,
			wantCode: "RESERVATION_NOT_AVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != "" {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantNumber, result.ReservationNumber)
			assert.Equal(t, model.StatusPending, result.Status)
		})
	}
}

func TestBookingService_GetForCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	reservation := model.Reservation{
		ID:                "reservation-1",
		ReservationNumber: "RES-000042",
		RestaurantID:      "restaurant-1",
		CustomerID:        "customer-1",
		Status:            model.StatusPending,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "owned reservation found",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)
			},
			wantErr: false,
		},
		{
			name: "reservation owned by another customer reads as not found",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.GetForCustomer(context.Background(), "customer-1", "reservation-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "RES-000042", result.ReservationNumber)
			}
		})
	}
}

func TestBookingService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	tableID := "table-1"

	pendingReservation := model.Reservation{
		ID:           "reservation-1",
		RestaurantID: "restaurant-1",
		Status:       model.StatusPending,
		TableID:      &tableID,
	}

	tests := []struct {
		name      string
		req       dto.ConfirmReservationRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful confirmation keeps existing table",
			req:  dto.ConfirmReservationRequest{},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation, nil)

				f.tableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tableModel.Table{ID: tableID, RestaurantID: "restaurant-1"}, nil)

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
			name: "reservation not found",
			req:  dto.ConfirmReservationRequest{},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr: true,
		},
		{
			name: "already confirmed",
			req:  dto.ConfirmReservationRequest{},
			setupMock: func() {
				confirmed := pendingReservation
				confirmed.Status = model.StatusConfirmed

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr: true,
		},
		{
			name: "table from another restaurant",
			req:  dto.ConfirmReservationRequest{TableID: "table-9"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pendingReservation, nil)

				f.tableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tableModel.Table{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := f.svc.Confirm(context.Background(), "restaurant-1", "reservation-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusConfirmed, result.Status)
				assert.NotNil(t, result.ConfirmedAt)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	tests := []struct {
		name      string
		from      string
		to        string
		setupMock func(from string)
		wantErr   bool
	}{
		{
			name: "confirmed to seated",
			from: model.StatusConfirmed,
			to:   model.StatusSeated,
			setupMock: func(from string) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "reservation-1", Status: from}, nil)

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
			name: "seated to completed",
			from: model.StatusSeated,
			to:   model.StatusCompleted,
			setupMock: func(from string) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "reservation-1", Status: from}, nil)

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
			name: "pending cannot be seated directly",
			from: model.StatusPending,
			to:   model.StatusSeated,
			setupMock: func(from string) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "reservation-1", Status: from}, nil)
			},
			wantErr: true,
		},
		{
			name: "completed is terminal",
			from: model.StatusCompleted,
			to:   model.StatusCancelled,
			setupMock: func(from string) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "reservation-1", Status: from}, nil)
			},
			wantErr: true,
		},
		{
			name:      "unknown status rejected before lookup",
			from:      model.StatusPending,
			to:        "archived",
			setupMock: func(from string) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock(tt.from)

			err := f.svc.UpdateStatus(context.Background(), "restaurant-1", "reservation-1", dto.UpdateStatusRequest{Status: tt.to})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.CancelReservationRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful cancellation with reason",
			req:  dto.CancelReservationRequest{Reason: "change of plans"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "reservation-1", Status: model.StatusPending}, nil)

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
			name: "unowned reservation reads as not found",
			req:  dto.CancelReservationRequest{},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr: true,
		},
		{
			name: "seated reservation cannot be cancelled",
			req:  dto.CancelReservationRequest{},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "reservation-1", Status: model.StatusSeated}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Cancel(context.Background(), "customer-1", "reservation-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_ReleaseTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	req := dto.ReleaseTableRequest{
		TableID:         "table-1",
		ReservationDate: "2026-09-10",
		ReservationTime: "19:00",
	}

	t.Run("release scoped to restaurant and slot", func(t *testing.T) {
		var gotFilter gDto.FilterGroup

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ map[string]any, filter gDto.FilterGroup) error {
				gotFilter = filter

				return nil
			})

		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := f.svc.ReleaseTable(context.Background(), "restaurant-1", req)

		assert.NoError(t, err)

		values := map[string]any{}
		for _, raw := range gotFilter.Filters {
			if flt, ok := raw.(gDto.Filter); ok {
				values[flt.Field] = flt.Value
			}
		}

		assert.Equal(t, "restaurant-1", values[model.FieldRestaurantID])
		assert.Equal(t, "table-1", values[model.FieldTableID])
		assert.Equal(t, "2026-09-10", values[model.FieldReservationDate])
	})

	t.Run("update error", func(t *testing.T) {
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := f.svc.ReleaseTable(context.Background(), "restaurant-1", req)

		assert.Error(t, err)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newBookingFixture(ctrl)

	t.Run("cache miss fetches from repository", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		f.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{
				{
					ID:                "reservation-1",
					ReservationNumber: "RES-000001",
					Status:            model.StatusPending,
					ReservationDate:   timezone.Now(),
				},
			}, nil)

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		result, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 1, result.TotalData)
		assert.Len(t, result.Reservations, 1)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
	})
}
