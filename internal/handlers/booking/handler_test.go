package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"mesa/infras/otel/mocks"
	"mesa/internal/domains/booking/model/dto"
	"mesa/internal/domains/booking/service"
	"mesa/internal/handlers/booking"
)

type stubBookingService struct {
	service.Booking

	gotRestaurantID string
	gotBookingID    string
	gotAvailability dto.AvailabilityRequest
	gotStatus       dto.UpdateStatusRequest
	gotRelease      dto.ReleaseTableRequest
}

func (s *stubBookingService) CheckAvailability(_ context.Context, restaurantID string, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error) {
	s.gotRestaurantID = restaurantID
	s.gotAvailability = req

	return dto.AvailabilityResponse{}, nil
}

func (s *stubBookingService) GetForRestaurant(_ context.Context, restaurantID, id string) (dto.ReservationResponse, error) {
	s.gotRestaurantID = restaurantID
	s.gotBookingID = id

	return dto.ReservationResponse{}, nil
}

func (s *stubBookingService) UpdateStatus(_ context.Context, restaurantID, id string, req dto.UpdateStatusRequest) error {
	s.gotRestaurantID = restaurantID
	s.gotBookingID = id
	s.gotStatus = req

	return nil
}

func (s *stubBookingService) ReleaseTable(_ context.Context, restaurantID string, req dto.ReleaseTableRequest) error {
	s.gotRestaurantID = restaurantID
	s.gotRelease = req

	return nil
}

func newBookingRouter(stub *stubBookingService) *chi.Mux {
	handler := booking.New(stub, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/restaurants", handler.RestaurantRouter)

	return router
}

func TestBookingHandler_Routes(t *testing.T) {
	t.Run("availability is a GET with query parameters", func(t *testing.T) {
		stub := &stubBookingService{}
		router := newBookingRouter(stub)

		target := "/restaurants/restaurant-1/bookings/availability" +
			"?reservationDate=2026-09-10&reservationTime=19:00&partySize=4"
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "restaurant-1", stub.gotRestaurantID)
		assert.Equal(t, "2026-09-10", stub.gotAvailability.ReservationDate)
		assert.Equal(t, "19:00", stub.gotAvailability.ReservationTime)
		assert.Equal(t, 4, stub.gotAvailability.PartySize)
	})

	t.Run("availability rejects a missing party size", func(t *testing.T) {
		stub := &stubBookingService{}
		router := newBookingRouter(stub)

		target := "/restaurants/restaurant-1/bookings/availability" +
			"?reservationDate=2026-09-10&reservationTime=19:00"
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("availability does not shadow the booking lookup", func(t *testing.T) {
		stub := &stubBookingService{}
		router := newBookingRouter(stub)

		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/restaurants/restaurant-1/bookings/booking-1", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "booking-1", stub.gotBookingID)
	})

	t.Run("status update is a POST", func(t *testing.T) {
		stub := &stubBookingService{}
		router := newBookingRouter(stub)

		body := strings.NewReader(`{"status":"confirmed"}`)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/restaurants/restaurant-1/bookings/booking-1/status", body))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "restaurant-1", stub.gotRestaurantID)
		assert.Equal(t, "booking-1", stub.gotBookingID)
		assert.Equal(t, "confirmed", stub.gotStatus.Status)
	})

	t.Run("table release carries the restaurant scope", func(t *testing.T) {
		stub := &stubBookingService{}
		router := newBookingRouter(stub)

		body := strings.NewReader(`{
			"tableId":"8a7a44b6-6c9b-4a4a-9d2a-6cf39f6b7e01",
			"reservationDate":"2026-09-10",
			"reservationTime":"19:00"
		}`)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/restaurants/restaurant-1/tables/release", body))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "restaurant-1", stub.gotRestaurantID)
		assert.Equal(t, "8a7a44b6-6c9b-4a4a-9d2a-6cf39f6b7e01", stub.gotRelease.TableID)
	})
}
