package model

import (
	"mesa/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID                 = "id"
	FieldReservationNumber  = "reservation_number"
	FieldRestaurantID       = "restaurant_id"
	FieldTableID            = "table_id"
	FieldCustomerID         = "customer_id"
	FieldCustomerName       = "customer_name"
	FieldPartySize          = "party_size"
	FieldReservationDate    = "reservation_date"
	FieldReservationTime    = "reservation_time"
	FieldDurationMinutes    = "duration_minutes"
	FieldStatus             = "status"
	FieldNotes              = "notes"
	FieldConfirmedAt        = "confirmed_at"
	FieldCancelledAt        = "cancelled_at"
	FieldCancellationReason = "cancellation_reason"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusSeated    = "seated"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no_show"
)

// ActiveStatuses are the statuses under which a reservation still holds its
// table for the slot. This set is what prevents double booking.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusSeated}
}

// IsTerminal reports whether no further transition is defined out of status.
func IsTerminal(status string) bool {
	switch status {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// transitions is the closed set of legal status edges.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusSeated, StatusNoShow, StatusCancelled},
	StatusSeated:    {StatusCompleted},
}

// CanTransition reports whether moving a reservation from one status to
// another is legal.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// ValidStatus reports whether the value is a member of the status enum.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusSeated, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

type Reservation struct {
	ID                 string     `db:"id"`
	ReservationNumber  string     `db:"reservation_number"`
	RestaurantID       string     `db:"restaurant_id"`
	TableID            *string    `db:"table_id"`
	CustomerID         string     `db:"customer_id"`
	CustomerName       string     `db:"customer_name"`
	CustomerPhone      string     `db:"customer_phone"`
	CustomerEmail      string     `db:"customer_email"`
	PartySize          int        `db:"party_size"`
	ReservationDate    time.Time  `db:"reservation_date"`
	ReservationTime    string     `db:"reservation_time"`
	DurationMinutes    int        `db:"duration_minutes"`
	Status             string     `db:"status"`
	Notes              string     `db:"notes"`
	ConfirmedAt        *time.Time `db:"confirmed_at"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	CancellationReason *string    `db:"cancellation_reason"`
	model.Metadata
}
