package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/internal/domains/table/model"
	gDto "mesa/shared/dto"
	gRepo "mesa/shared/repository"
)

type Table interface {
	Insert(ctx context.Context, model model.Table) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Table, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Table, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListBookable(ctx context.Context, restaurantID string) ([]model.Table, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Table]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Table {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Table](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListBookable returns the restaurant's schedulable tables ordered by
// ascending capacity, so the smallest sufficient table sorts first.
func (repo *repositoryImpl) ListBookable(ctx context.Context, restaurantID string) ([]model.Table, error) {
	params := gDto.QueryParams{
		SortBy:  model.FieldCapacity,
		SortDir: gDto.SortDirAsc,
	}

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
				Field:    model.FieldIsBookable,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}
