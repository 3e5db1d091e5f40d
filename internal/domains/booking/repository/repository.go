package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/internal/domains/booking/model"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/logger"
	gRepo "mesa/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	occupiedTableIDsQuery = `SELECT table_id FROM reservations
		WHERE restaurant_id = $1
		AND reservation_date = $2
		AND reservation_time = $3
		AND status = ANY($4)
		AND table_id IS NOT NULL`

	nextReservationNumberQuery = `SELECT nextval('reservation_number_seq')`
)

// Tx is the handle the check-and-reserve path drives. The live
// implementation hands out *sqlx.Tx.
type Tx interface {
	Commit() error
	Rollback() error
}

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	InsertTx(ctx context.Context, tx Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx Tx, req map[string]any, filter gDto.FilterGroup) error
	OccupiedTableIDs(ctx context.Context, restaurantID, date, time string) ([]string, error)
	OccupiedTableIDsTx(ctx context.Context, tx Tx, restaurantID, date, time string) ([]string, error)
	NextReservationNumber(ctx context.Context, tx Tx) (int64, error)
	BeginSerializableTx(ctx context.Context) (Tx, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OccupiedTableIDs returns the ids of tables held by an active reservation
// for the exact slot. Matching is per exact (date, time); durations are not
// expanded into intervals.
func (repo *repositoryImpl) OccupiedTableIDs(ctx context.Context, restaurantID, date, time string) (ids []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.OccupiedTableIDs")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, occupiedTableIDsQuery)

	err = repo.db.Read.SelectContext(ctx, &ids, occupiedTableIDsQuery, restaurantID, date, time, pq.Array(model.ActiveStatuses()))
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get occupied table ids: %w", err)
	}

	return ids, nil
}

// OccupiedTableIDsTx is the occupancy query executed inside an open
// transaction, so the check-and-reserve path reads and writes one snapshot.
func (repo *repositoryImpl) OccupiedTableIDsTx(ctx context.Context, tx Tx, restaurantID, date, time string) (ids []string, err error) {
	sqltx, err := sqlxTx(tx)
	if err != nil {
		return nil, err
	}

	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.OccupiedTableIDsTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, occupiedTableIDsQuery)

	err = sqltx.SelectContext(ctx, &ids, occupiedTableIDsQuery, restaurantID, date, time, pq.Array(model.ActiveStatuses()))
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get occupied table ids: %w", err)
	}

	return ids, nil
}

// NextReservationNumber draws the next value from the reservation number
// sequence.
func (repo *repositoryImpl) NextReservationNumber(ctx context.Context, tx Tx) (seq int64, err error) {
	sqltx, err := sqlxTx(tx)
	if err != nil {
		return 0, err
	}

	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.NextReservationNumber")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, nextReservationNumberQuery)

	err = sqltx.GetContext(ctx, &seq, nextReservationNumberQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to get next reservation number: %w", err)
	}

	return seq, nil
}

// InsertTx and UpdateTx shadow the embedded generic methods so callers hand
// in the narrow Tx handle instead of a concrete *sqlx.Tx.
func (repo *repositoryImpl) InsertTx(ctx context.Context, tx Tx, mod model.Reservation) error {
	sqltx, err := sqlxTx(tx)
	if err != nil {
		return err
	}

	return repo.Repository.InsertTx(ctx, sqltx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) UpdateTx(ctx context.Context, tx Tx, req map[string]any, filter gDto.FilterGroup) error {
	sqltx, err := sqlxTx(tx)
	if err != nil {
		return err
	}

	return repo.Repository.UpdateTx(ctx, sqltx, req, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) BeginSerializableTx(ctx context.Context) (Tx, error) {
	tx, err := repo.db.BeginSerializableTx(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return tx, nil
}

func sqlxTx(tx Tx) (*sqlx.Tx, error) {
	sqltx, ok := tx.(*sqlx.Tx)
	if !ok {
		return nil, fmt.Errorf("unexpected transaction handle %T", tx)
	}

	return sqltx, nil
}

