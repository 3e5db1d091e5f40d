package service

import (
	"context"
	"fmt"
	"mesa/config"
	"mesa/infras/kafka"
	"mesa/infras/otel"
	"mesa/internal/domains/booking/model"
	"mesa/internal/domains/booking/model/dto"
	"mesa/internal/domains/booking/repository"
	restaurantModel "mesa/internal/domains/restaurant/model"
	restaurantRepo "mesa/internal/domains/restaurant/repository"
	tableModel "mesa/internal/domains/table/model"
	tableRepo "mesa/internal/domains/table/repository"
	"mesa/shared"
	"mesa/shared/cache"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/timezone"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	// Offset applied to the requested time to produce the two convenience
	// suggestions around the primary slot.
	suggestionOffset = 15 * time.Minute

	reservationNumberFormat  = "RES-%06d"
	reservationNumberModulus = 1000000

	EventReservationCreated       = "reservation.created"
	EventReservationConfirmed     = "reservation.confirmed"
	EventReservationCancelled     = "reservation.cancelled"
	EventReservationStatusChanged = "reservation.status_changed"
)

type Booking interface {
	CheckAvailability(ctx context.Context, restaurantID string, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetForCustomer(ctx context.Context, customerID, id string) (dto.ReservationResponse, error)
	GetForRestaurant(ctx context.Context, restaurantID, id string) (dto.ReservationResponse, error)
	Confirm(ctx context.Context, restaurantID, id string, req dto.ConfirmReservationRequest) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, restaurantID, id string, req dto.UpdateStatusRequest) error
	Cancel(ctx context.Context, customerID, id string, req dto.CancelReservationRequest) error
	ReleaseTable(ctx context.Context, restaurantID string, req dto.ReleaseTableRequest) error
}

type serviceImpl struct {
	repo           repository.Reservation
	tableRepo      tableRepo.Table
	restaurantRepo restaurantRepo.Restaurant
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
	kafka          kafka.Client
}

func New(repo repository.Reservation, tableRepo tableRepo.Table, restaurantRepo restaurantRepo.Restaurant, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:           repo,
		tableRepo:      tableRepo,
		restaurantRepo: restaurantRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
		kafka:          kafka,
	}
}

// CheckAvailability evaluates the requested slot and surrounds it with two
// suggested times at the configured offset. Results are computed fresh on
// every call; availability is never cached.
func (s *serviceImpl) CheckAvailability(ctx context.Context, restaurantID string, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	restaurantExists, err := s.restaurantRepo.Exist(ctx, shared.FilterByID(restaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if restaurant exists")

		return res, fmt.Errorf("failed to check if restaurant exists: %w", err)
	}

	if !restaurantExists {
		return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	isAvailable, freeCount, err := s.evaluateSlot(ctx, restaurantID, req.ReservationDate, req.ReservationTime, req.PartySize, req.TableID)
	if err != nil {
		return res, err
	}

	res.Slots = []dto.AvailabilitySlot{
		{
			Time:                req.ReservationTime,
			IsAvailable:         isAvailable,
			AvailableTableCount: freeCount,
		},
	}

	// The surrounding suggestions are a presentation hint only: they reuse
	// the primary slot's free count and are not verified offers.
	for _, offset := range []time.Duration{-suggestionOffset, suggestionOffset} {
		suggestedTime, offsetErr := offsetTime(req.ReservationTime, offset)
		if offsetErr != nil {
			continue
		}

		res.Slots = append(res.Slots, dto.AvailabilitySlot{
			Time:                suggestedTime,
			IsAvailable:         true,
			AvailableTableCount: freeCount,
			Suggested:           true,
		})
	}

	return res, nil
}

// Create admits a reservation only through the availability gate. The
// re-check and the insert run in one serializable transaction, with the
// partial unique index on active slots as the storage-level backstop.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	restaurantExists, err := s.restaurantRepo.Exist(ctx, shared.FilterByID(req.RestaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if restaurant exists")

		return res, fmt.Errorf("failed to check if restaurant exists: %w", err)
	}

	if !restaurantExists {
		return res, failure.NotFound("restaurant not found") // nolint:wrapcheck
	}

	isAvailable, _, err := s.evaluateSlot(ctx, req.RestaurantID, req.ReservationDate, req.ReservationTime, req.PartySize, req.TableID)
	if err != nil {
		return res, err
	}

	if !isAvailable {
		return res, failure.ReservationNotAvailable("no table is available for the requested slot") // nolint:wrapcheck
	}

	tx, err := s.repo.BeginSerializableTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin reservation transaction")

		return res, fmt.Errorf("failed to begin reservation transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback reservation transaction")
			}
		}
	}()

	isAvailable, _, err = s.evaluateSlotTx(ctx, tx, req.RestaurantID, req.ReservationDate, req.ReservationTime, req.PartySize, req.TableID)
	if err != nil {
		return res, err
	}

	if !isAvailable {
		return res, failure.ReservationNotAvailable("no table is available for the requested slot") // nolint:wrapcheck
	}

	seq, err := s.repo.NextReservationNumber(ctx, tx)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate reservation number")

		return res, fmt.Errorf("failed to generate reservation number: %w", err)
	}

	reservation, err := req.ToModel(fmt.Sprintf(reservationNumberFormat, seq%reservationNumberModulus))
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.InsertTx(ctx, tx, reservation); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.ReservationNotAvailable("the requested table was just taken") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit reservation transaction")

		return res, fmt.Errorf("failed to commit reservation transaction: %w", err)
	}

	s.publishEvent(ctx, EventReservationCreated, reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	reservations, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(reservations, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return total, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return total, nil
}

// GetForCustomer fetches one reservation scoped to its owning customer.
// A reservation owned by someone else is reported as not found.
func (s *serviceImpl) GetForCustomer(ctx context.Context, customerID, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetForCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, scopedFilter(id, model.FieldCustomerID, customerID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetForRestaurant(ctx context.Context, restaurantID, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetForRestaurant")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, scopedFilter(id, model.FieldRestaurantID, restaurantID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

// Confirm moves a pending reservation to confirmed, resolving the effective
// table as the explicitly supplied one or the reservation's existing one. A
// supplied table must belong to the restaurant.
func (s *serviceImpl) Confirm(ctx context.Context, restaurantID, id string, req dto.ConfirmReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := scopedFilter(id, model.FieldRestaurantID, restaurantID)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if !model.CanTransition(reservation.Status, model.StatusConfirmed) {
		return res, failure.BadRequestFromString(fmt.Sprintf("cannot confirm a reservation with status %s", reservation.Status)) // nolint:wrapcheck
	}

	effectiveTableID := reservation.TableID
	if req.TableID != constant.Empty {
		effectiveTableID = &req.TableID
	}

	if effectiveTableID != nil {
		table, tableErr := s.tableRepo.Get(ctx, tableScopedFilter(*effectiveTableID, restaurantID))
		if tableErr != nil {
			log.Error().Err(tableErr).Msg("failed to get table")

			return res, fmt.Errorf("failed to get table: %w", tableErr)
		}

		if table.ID == constant.Empty {
			return res, failure.BadRequestFromString("table does not belong to this restaurant") // nolint:wrapcheck
		}
	}

	confirmedAt := timezone.Now()

	updatedFields := map[string]any{
		model.FieldStatus:      model.StatusConfirmed,
		model.FieldConfirmedAt: confirmedAt,
	}

	if effectiveTableID != nil {
		updatedFields[model.FieldTableID] = *effectiveTableID
	}

	if req.Notes != constant.Empty {
		updatedFields[model.FieldNotes] = req.Notes
	}

	updatedFields[constant.FieldModifiedAt] = confirmedAt

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to confirm reservation")

		return res, fmt.Errorf("failed to confirm reservation: %w", err)
	}

	reservation.Status = model.StatusConfirmed
	reservation.ConfirmedAt = &confirmedAt
	reservation.TableID = effectiveTableID

	if req.Notes != constant.Empty {
		reservation.Notes = req.Notes
	}

	s.publishEvent(ctx, EventReservationConfirmed, reservation)
	s.invalidateReservation(ctx, id)

	res.FromModel(reservation)

	return res, nil
}

// UpdateStatus applies a status change after validating it against the
// transition table.
func (s *serviceImpl) UpdateStatus(ctx context.Context, restaurantID, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidStatus(req.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("unknown reservation status %s", req.Status)) // nolint:wrapcheck
	}

	filter := scopedFilter(id, model.FieldRestaurantID, restaurantID)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if !model.CanTransition(reservation.Status, req.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("illegal status transition from %s to %s", reservation.Status, req.Status)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
	}

	switch req.Status {
	case model.StatusConfirmed:
		updatedFields[model.FieldConfirmedAt] = timezone.Now()
	case model.StatusCancelled:
		updatedFields[model.FieldCancelledAt] = timezone.Now()
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	reservation.Status = req.Status
	s.publishEvent(ctx, EventReservationStatusChanged, reservation)
	s.invalidateReservation(ctx, id)

	return nil
}

// Cancel is customer-scoped: a reservation that does not exist and one owned
// by another customer are both reported as not found.
func (s *serviceImpl) Cancel(ctx context.Context, customerID, id string, req dto.CancelReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := scopedFilter(id, model.FieldCustomerID, customerID)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if !model.CanTransition(reservation.Status, model.StatusCancelled) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot cancel a reservation with status %s", reservation.Status)) // nolint:wrapcheck
	}

	now := timezone.Now()

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		model.FieldCancelledAt:   now,
		constant.FieldModifiedAt: now,
	}

	if req.Reason != constant.Empty {
		updatedFields[model.FieldCancellationReason] = req.Reason
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	reservation.Status = model.StatusCancelled
	s.publishEvent(ctx, EventReservationCancelled, reservation)
	s.invalidateReservation(ctx, id)

	return nil
}

// ReleaseTable clears the table assignment on every reservation still in
// pending or confirmed for the exact slot, scoped to the restaurant owning
// the table. Seated and terminal reservations at the same slot are untouched.
func (s *serviceImpl) ReleaseTable(ctx context.Context, restaurantID string, req dto.ReleaseTableRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReleaseTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Value:    restaurantID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldTableID,
				Value:    req.TableID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldReservationDate,
				Value:    req.ReservationDate,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldReservationTime,
				Value:    req.ReservationTime,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    []string{model.StatusPending, model.StatusConfirmed},
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	updatedFields := map[string]any{
		model.FieldTableID:       nil,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to release table")

		return fmt.Errorf("failed to release table: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()

	return nil
}

// evaluateSlot computes slot availability: bookable tables with sufficient
// capacity, minus tables held by active reservations at the exact slot. When
// a specific table was requested, availability means that table is free;
// otherwise any free table suffices.
func (s *serviceImpl) evaluateSlot(ctx context.Context, restaurantID, date, timeStr string, partySize int, tableID string) (bool, int, error) {
	occupied, err := s.repo.OccupiedTableIDs(ctx, restaurantID, date, timeStr)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupied tables")

		return false, 0, fmt.Errorf("failed to get occupied tables: %w", err)
	}

	return s.resolveFreeTables(ctx, restaurantID, partySize, tableID, occupied)
}

func (s *serviceImpl) evaluateSlotTx(ctx context.Context, tx repository.Tx, restaurantID, date, timeStr string, partySize int, tableID string) (bool, int, error) {
	occupied, err := s.repo.OccupiedTableIDsTx(ctx, tx, restaurantID, date, timeStr)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupied tables")

		return false, 0, fmt.Errorf("failed to get occupied tables: %w", err)
	}

	return s.resolveFreeTables(ctx, restaurantID, partySize, tableID, occupied)
}

func (s *serviceImpl) resolveFreeTables(ctx context.Context, restaurantID string, partySize int, tableID string, occupied []string) (bool, int, error) {
	tables, err := s.tableRepo.ListBookable(ctx, restaurantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookable tables")

		return false, 0, fmt.Errorf("failed to list bookable tables: %w", err)
	}

	occupiedSet := make(map[string]struct{}, len(occupied))
	for _, id := range occupied {
		occupiedSet[id] = struct{}{}
	}

	free := make([]tableModel.Table, 0, len(tables))

	for _, table := range tables {
		if table.Capacity < partySize {
			continue
		}

		if _, taken := occupiedSet[table.ID]; taken {
			continue
		}

		free = append(free, table)
	}

	isAvailable := len(free) > 0
	if tableID != constant.Empty {
		isAvailable = false

		for _, table := range free {
			if table.ID == tableID {
				isAvailable = true

				break
			}
		}
	}

	return isAvailable, len(free), nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation model.Reservation) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.ReservationEvent{
		Type:              eventType,
		ReservationID:     reservation.ID,
		ReservationNumber: reservation.ReservationNumber,
		RestaurantID:      reservation.RestaurantID,
		CustomerID:        reservation.CustomerID,
		Status:            reservation.Status,
		OccurredAt:        timezone.Format(timezone.Now(), constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   reservation.ID,
			Value: event,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.ReservationEvents, message); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish reservation event")
		}
	}()
}

func (s *serviceImpl) invalidateReservation(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

func scopedFilter(id, scopeField, scopeValue string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    scopeField,
				Value:    scopeValue,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func tableScopedFilter(tableID, restaurantID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    tableModel.FieldID,
				Value:    tableID,
				Operator: gDto.FilterOperatorEq,
				Table:    tableModel.TableName,
			},
			gDto.Filter{
				Field:    tableModel.FieldRestaurantID,
				Value:    restaurantID,
				Operator: gDto.FilterOperatorEq,
				Table:    tableModel.TableName,
			},
		},
	}
}

// offsetTime shifts a wall-clock "15:04" time by the given offset.
func offsetTime(value string, offset time.Duration) (string, error) {
	parsed, err := time.Parse(constant.TimeOnlyFormat, value)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to parse time: %w", err)
	}

	return parsed.Add(offset).Format(constant.TimeOnlyFormat), nil
}
