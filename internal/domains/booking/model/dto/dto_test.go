package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mesa/internal/domains/booking/model"
	"mesa/internal/domains/booking/model/dto"
)

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		RestaurantID:    "restaurant-1",
		CustomerID:      "customer-1",
		CustomerName:    "Test Customer",
		PartySize:       4,
		ReservationDate: "2026-09-10",
		ReservationTime: "19:00",
		TableID:         "table-1",
	}

	reservation, err := req.ToModel("RES-000042")

	assert.NoError(t, err)
	assert.NotEmpty(t, reservation.ID)
	assert.Equal(t, "RES-000042", reservation.ReservationNumber)
	assert.Equal(t, model.StatusPending, reservation.Status)
	assert.Equal(t, 90, reservation.DurationMinutes)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), reservation.ReservationDate)

	if assert.NotNil(t, reservation.TableID) {
		assert.Equal(t, "table-1", *reservation.TableID)
	}
}

func TestCreateReservationRequest_ToModelDefaults(t *testing.T) {
	req := dto.CreateReservationRequest{
		RestaurantID:    "restaurant-1",
		CustomerID:      "customer-1",
		CustomerName:    "Test Customer",
		PartySize:       2,
		ReservationDate: "2026-09-10",
		ReservationTime: "19:00",
		DurationMinutes: 120,
	}

	reservation, err := req.ToModel("RES-000001")

	assert.NoError(t, err)
	assert.Equal(t, 120, reservation.DurationMinutes)
	assert.Nil(t, reservation.TableID)
}

func TestCreateReservationRequest_ToModelInvalidDate(t *testing.T) {
	req := dto.CreateReservationRequest{
		ReservationDate: "10-09-2026",
		ReservationTime: "19:00",
	}

	_, err := req.ToModel("RES-000001")

	assert.Error(t, err)
}

func TestShortTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"time column value with seconds", "19:30:00", "19:30"},
		{"already short", "19:30", "19:30"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.ShortTime(tt.value))
		})
	}
}

func TestReservationResponse_FromModel(t *testing.T) {
	tableID := "table-1"
	confirmedAt := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)

	reservation := model.Reservation{
		ID:                "reservation-1",
		ReservationNumber: "RES-000042",
		RestaurantID:      "restaurant-1",
		TableID:           &tableID,
		CustomerID:        "customer-1",
		CustomerName:      "Test Customer",
		PartySize:         4,
		ReservationDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		ReservationTime:   "19:00:00",
		DurationMinutes:   90,
		Status:            model.StatusConfirmed,
		ConfirmedAt:       &confirmedAt,
	}

	res := dto.ReservationResponse{}
	res.FromModel(reservation)

	assert.Equal(t, "RES-000042", res.ReservationNumber)
	assert.Equal(t, "2026-09-10", res.ReservationDate)
	assert.Equal(t, "19:00", res.ReservationTime)
	assert.Equal(t, model.StatusConfirmed, res.Status)
	assert.NotNil(t, res.ConfirmedAt)
	assert.Nil(t, res.CancelledAt)
}
