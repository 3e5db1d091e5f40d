package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/internal/domains/restaurant/model"
	gDto "mesa/shared/dto"
	gRepo "mesa/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Restaurant interface {
	Insert(ctx context.Context, model model.Restaurant) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Restaurant) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Restaurant, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Restaurant, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
}

type Schedule interface {
	InsertBulk(ctx context.Context, models []model.Schedule) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Schedule) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Schedule, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Restaurant]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Restaurant {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Restaurant](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return repo.db.BeginTx(ctx) //nolint:wrapcheck
}

type scheduleRepositoryImpl struct {
	gRepo.Repository[model.Schedule]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSchedule(db *postgres.Connection, otel otel.Otel) Schedule {
	return &scheduleRepositoryImpl{
		Repository: gRepo.NewRepository[model.Schedule](model.ScheduleEntityName, model.ScheduleTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
