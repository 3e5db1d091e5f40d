package booking

import (
	"mesa/infras/otel"
	"mesa/internal/domains/booking/model"
	"mesa/internal/domains/booking/model/dto"
	"mesa/internal/domains/booking/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/validator"
	"mesa/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetMyBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
	})
}

// RestaurantRouter registers the restaurant-facing booking routes on the
// shared /restaurants group.
func (handler *Handler) RestaurantRouter(router chi.Router) {
	router.Get("/{restaurantId}/bookings/availability", handler.CheckAvailability)
	router.Post("/{restaurantId}/tables/release", handler.ReleaseTable)
	router.Get("/{restaurantId}/bookings", handler.GetRestaurantBookings)
	router.Get("/{restaurantId}/bookings/{bookingId}", handler.GetRestaurantBookingByID)
	router.Post("/{restaurantId}/bookings/{bookingId}/confirm", handler.ConfirmBooking)
	router.Post("/{restaurantId}/bookings/{bookingId}/status", handler.UpdateBookingStatus)
}

// CheckAvailability evaluates table availability for a slot.
// @Summary Check availability
// @Description Evaluate whether the requested slot has a free table for the party, with suggested nearby times.
// @Tags Booking
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param reservationDate query string true "Reservation date (YYYY-MM-DD)"
// @Param reservationTime query string true "Reservation time (HH:MM)"
// @Param partySize query int true "Party size"
// @Param tableId query string false "Requested table ID"
// @Success 200 {object} response.Envelope "Availability slots"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/bookings/availability [get]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	restaurantID := chi.URLParam(request, constant.RequestParamRestaurantID)

	req := dto.AvailabilityRequest{}
	req.FromRequest(request)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	availability, err := handler.service.CheckAvailability(ctx, restaurantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(writer, http.StatusOK, availability)
}

// CreateBooking handles the creation of a new reservation.
// @Summary Create a new reservation
// @Description Reserve a table through the availability gate. The slot is re-checked and the row inserted atomically.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Envelope "Reservation created successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation " + reservation.ReservationNumber + " created successfully")

	response.WithJSON(writer, http.StatusCreated, reservation)
}

// GetMyBookings retrieves the reservations of a customer.
// @Summary Get customer reservations
// @Description Retrieve all reservations of a customer with optional status and date filters.
// @Tags Booking
// @Accept json
// @Produce json
// @Param customerId query string true "Customer ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param reservation_date query string false "Filter by reservation date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope "List of reservations"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/bookings [get]
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	customerID := r.URL.Query().Get(constant.RequestParamCustomerID)
	if customerID == "" {
		err := failure.BadRequestFromString("customerId is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCustomerID,
				Operator: gDto.FilterOperatorEq,
				Value:    customerID,
				Table:    model.TableName,
			},
		},
	}

	appendBookingFilters(&filterGroup, r)

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully for customer " + customerID)

	response.WithPagination(w, http.StatusOK, reservations.Reservations, gDto.BuildPagination(reservations.TotalData, queryParams.Page, queryParams.Limit))
}

// GetBookingByID retrieves one reservation owned by a customer.
// @Summary Get a reservation by ID
// @Description Retrieve a reservation scoped to its owning customer.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param customerId query string true "Customer ID"
// @Success 200 {object} response.Envelope "Reservation details"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	customerID := r.URL.Query().Get(constant.RequestParamCustomerID)
	if customerID == "" {
		err := failure.BadRequestFromString("customerId is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.GetForCustomer(ctx, customerID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// CancelBooking cancels a reservation on behalf of its customer.
// @Summary Cancel a reservation
// @Description Cancel a pending or confirmed reservation. The freed table becomes available immediately.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param customerId query string true "Customer ID"
// @Param request body dto.CancelReservationRequest false "Cancel Reservation Request"
// @Success 200 {object} response.Envelope "Reservation cancelled successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/bookings/{id}/cancel [post]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	customerID := r.URL.Query().Get(constant.RequestParamCustomerID)
	if customerID == "" {
		err := failure.BadRequestFromString("customerId is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.CancelReservationRequest{}
	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	if err := handler.service.Cancel(ctx, customerID, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation cancelled successfully by customer " + customerID)

	response.WithMessage(w, http.StatusOK, "Reservation cancelled successfully")
}

// GetRestaurantBookings retrieves the reservations of a restaurant.
// @Summary Get restaurant reservations
// @Description Retrieve all reservations of a restaurant with optional status and date filters.
// @Tags Booking
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param reservation_date query string false "Filter by reservation date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope "List of reservations"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/bookings [get]
func (handler *Handler) GetRestaurantBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantBookings")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
		},
	}

	appendBookingFilters(&filterGroup, r)

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant reservations retrieved successfully")

	response.WithPagination(w, http.StatusOK, reservations.Reservations, gDto.BuildPagination(reservations.TotalData, queryParams.Page, queryParams.Limit))
}

// GetRestaurantBookingByID retrieves one reservation of a restaurant.
// @Summary Get a restaurant reservation by ID
// @Description Retrieve a reservation scoped to its restaurant.
// @Tags Booking
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param bookingId path string true "Reservation ID"
// @Success 200 {object} response.Envelope "Reservation details"
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/bookings/{bookingId} [get]
func (handler *Handler) GetRestaurantBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantBookingByID")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	reservation, err := handler.service.GetForRestaurant(ctx, restaurantID, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// ConfirmBooking confirms a pending reservation.
// @Summary Confirm a reservation
// @Description Confirm a pending reservation, optionally assigning a different table.
// @Tags Booking
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param bookingId path string true "Reservation ID"
// @Param request body dto.ConfirmReservationRequest false "Confirm Reservation Request"
// @Success 200 {object} response.Envelope "Reservation confirmed successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/bookings/{bookingId}/confirm [post]
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	req := dto.ConfirmReservationRequest{}
	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	reservation, err := handler.service.Confirm(ctx, restaurantID, bookingID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation " + reservation.ReservationNumber + " confirmed successfully")

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateBookingStatus applies a lifecycle transition to a reservation.
// @Summary Update reservation status
// @Description Move a reservation through its lifecycle. Illegal transitions are rejected.
// @Tags Booking
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param bookingId path string true "Reservation ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Envelope "Reservation status updated successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/bookings/{bookingId}/status [post]
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	bookingID := chi.URLParam(r, constant.RequestParamBookingID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, restaurantID, bookingID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation status updated to " + req.Status)

	response.WithMessage(w, http.StatusOK, "Reservation status updated successfully")
}

// ReleaseTable detaches a table from its active reservations at a slot.
// @Summary Release a table
// @Description Clear the table assignment on pending and confirmed reservations for the exact slot.
// @Tags Booking
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.ReleaseTableRequest true "Release Table Request"
// @Success 200 {object} response.Envelope "Table released successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/tables/release [post]
func (handler *Handler) ReleaseTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseTable")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)

	req := dto.ReleaseTableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReleaseTable(ctx, restaurantID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to release table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table released successfully")

	response.WithMessage(w, http.StatusOK, "Table released successfully")
}

func appendBookingFilters(filterGroup *gDto.FilterGroup, r *http.Request) {
	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if reservationDate := r.URL.Query().Get(model.FieldReservationDate); reservationDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldReservationDate,
			Operator: gDto.FilterOperatorEq,
			Value:    reservationDate,
			Table:    model.TableName,
		})
	}

	if search := r.URL.Query().Get(constant.RequestParamSearch); search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldReservationNumber,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldNotes,
					ArgName:  "notes_search",
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
			},
		})
	}
}
