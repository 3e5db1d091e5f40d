package dto

import (
	"mesa/internal/domains/booking/model"
	"mesa/shared"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type AvailabilityRequest struct {
	ReservationDate string `json:"reservationDate" validate:"required,dateonly"`
	ReservationTime string `json:"reservationTime" validate:"required,hhmm"`
	PartySize       int    `json:"partySize"       validate:"required,min=1,max=20"`
	DurationMinutes int    `json:"durationMinutes" validate:"omitempty,min=30"`
	TableID         string `json:"tableId"         validate:"omitempty,uuid"`
}

// FromRequest binds the availability inputs from the query string. Values
// that fail to parse are left zero for the validator to reject.
func (a *AvailabilityRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	a.ReservationDate = query.Get(constant.RequestParamReservationDate)
	a.ReservationTime = query.Get(constant.RequestParamReservationTime)
	a.TableID = query.Get(constant.RequestParamTableID)

	if partySize, err := strconv.Atoi(query.Get(constant.RequestParamPartySize)); err == nil {
		a.PartySize = partySize
	}

	if duration, err := strconv.Atoi(query.Get(constant.RequestParamDuration)); err == nil {
		a.DurationMinutes = duration
	}
}

type AvailabilitySlot struct {
	Time                string `json:"time"`
	IsAvailable         bool   `json:"isAvailable"`
	AvailableTableCount int    `json:"availableTableCount"`
	Suggested           bool   `json:"suggested"`
}

type AvailabilityResponse struct {
	Slots []AvailabilitySlot `json:"slots"`
}

type CreateReservationRequest struct {
	RestaurantID    string `json:"restaurantId"    validate:"required,uuid"`
	CustomerID      string `json:"customerId"      validate:"required,uuid"`
	CustomerName    string `json:"customerName"    validate:"required,max=150"`
	CustomerPhone   string `json:"customerPhone"   validate:"omitempty,max=30"`
	CustomerEmail   string `json:"customerEmail"   validate:"omitempty,email,max=150"`
	PartySize       int    `json:"partySize"       validate:"required,min=1,max=20"`
	ReservationDate string `json:"reservationDate" validate:"required,dateonly"`
	ReservationTime string `json:"reservationTime" validate:"required,hhmm"`
	DurationMinutes int    `json:"durationMinutes" validate:"omitempty,min=30"`
	TableID         string `json:"tableId"         validate:"omitempty,uuid"`
	Notes           string `json:"notes"           validate:"omitempty"`
}

func (c *CreateReservationRequest) ToModel(reservationNumber string) (model.Reservation, error) {
	reservationDate, err := time.Parse(constant.DateOnlyFormat, c.ReservationDate)
	if err != nil {
		return model.Reservation{}, err
	}

	duration := c.DurationMinutes
	if duration == 0 {
		duration = 90
	}

	var tableID *string
	if c.TableID != constant.Empty {
		tableID = &c.TableID
	}

	return model.Reservation{
		ID:                uuid.NewString(),
		ReservationNumber: reservationNumber,
		RestaurantID:      c.RestaurantID,
		TableID:           tableID,
		CustomerID:        c.CustomerID,
		CustomerName:      c.CustomerName,
		CustomerPhone:     c.CustomerPhone,
		CustomerEmail:     c.CustomerEmail,
		PartySize:         c.PartySize,
		ReservationDate:   reservationDate,
		ReservationTime:   c.ReservationTime,
		DurationMinutes:   duration,
		Status:            model.StatusPending,
		Notes:             c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}, nil
}

type ConfirmReservationRequest struct {
	TableID string `json:"tableId" validate:"omitempty,uuid"`
	Notes   string `json:"notes"   validate:"omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed seated completed cancelled no_show"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason" validate:"omitempty"`
}

type ReleaseTableRequest struct {
	TableID         string `json:"tableId"         validate:"required,uuid"`
	ReservationDate string `json:"reservationDate" validate:"required,dateonly"`
	ReservationTime string `json:"reservationTime" validate:"required,hhmm"`
}

type ReservationResponse struct {
	ID                 string  `json:"id"`
	ReservationNumber  string  `json:"reservationNumber"`
	RestaurantID       string  `json:"restaurantId"`
	TableID            *string `json:"tableId"`
	CustomerID         string  `json:"customerId"`
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone"`
	CustomerEmail      string  `json:"customerEmail"`
	PartySize          int     `json:"partySize"`
	ReservationDate    string  `json:"reservationDate"`
	ReservationTime    string  `json:"reservationTime"`
	DurationMinutes    int     `json:"durationMinutes"`
	Status             string  `json:"status"`
	Notes              string  `json:"notes"`
	ConfirmedAt        *string `json:"confirmedAt"`
	CancelledAt        *string `json:"cancelledAt"`
	CancellationReason *string `json:"cancellationReason"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.ReservationNumber = mod.ReservationNumber
	r.RestaurantID = mod.RestaurantID
	r.TableID = mod.TableID
	r.CustomerID = mod.CustomerID
	r.CustomerName = mod.CustomerName
	r.CustomerPhone = mod.CustomerPhone
	r.CustomerEmail = mod.CustomerEmail
	r.PartySize = mod.PartySize
	r.ReservationDate = mod.ReservationDate.Format(constant.DateOnlyFormat)
	r.ReservationTime = ShortTime(mod.ReservationTime)
	r.DurationMinutes = mod.DurationMinutes
	r.Status = mod.Status
	r.Notes = mod.Notes
	r.ConfirmedAt = formatOptional(mod.ConfirmedAt)
	r.CancelledAt = formatOptional(mod.CancelledAt)
	r.CancellationReason = mod.CancellationReason
	r.Metadata.FromModel(mod.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReservationEvent is the payload published to the reservation events topic
// on lifecycle changes.
type ReservationEvent struct {
	Type              string `json:"type"`
	ReservationID     string `json:"reservationId"`
	ReservationNumber string `json:"reservationNumber"`
	RestaurantID      string `json:"restaurantId"`
	CustomerID        string `json:"customerId"`
	Status            string `json:"status"`
	OccurredAt        string `json:"occurredAt"`
}

// ShortTime trims a TIME column value like "19:30:00" down to "19:30".
func ShortTime(value string) string {
	if len(value) > len(constant.TimeOnlyFormat) {
		return value[:len(constant.TimeOnlyFormat)]
	}

	return value
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
