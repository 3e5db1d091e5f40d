package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"mesa/shared/dto"
)

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int
		page  int
		limit int
		want  dto.Pagination
	}{
		{
			name:  "middle page",
			total: 45,
			page:  2,
			limit: 10,
			want:  dto.Pagination{Page: 2, Limit: 10, Total: 45, TotalPages: 5, HasNext: true, HasPrev: true},
		},
		{
			name:  "first page",
			total: 45,
			page:  1,
			limit: 10,
			want:  dto.Pagination{Page: 1, Limit: 10, Total: 45, TotalPages: 5, HasNext: true, HasPrev: false},
		},
		{
			name:  "last page",
			total: 45,
			page:  5,
			limit: 10,
			want:  dto.Pagination{Page: 5, Limit: 10, Total: 45, TotalPages: 5, HasNext: false, HasPrev: true},
		},
		{
			name:  "empty result set",
			total: 0,
			page:  1,
			limit: 10,
			want:  dto.Pagination{Page: 1, Limit: 10, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name:  "page below one normalized",
			total: 10,
			page:  0,
			limit: 10,
			want:  dto.Pagination{Page: 1, Limit: 10, Total: 10, TotalPages: 1, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.BuildPagination(tt.total, tt.page, tt.limit))
		})
	}
}

func TestQueryParamsFromRequest(t *testing.T) {
	t.Run("explicit values", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/?page=3&limit=25&sort_by=created_at&sort_dir=asc", nil)

		params := dto.QueryParams{}
		params.FromRequest(r, true)

		assert.Equal(t, 3, params.Page)
		assert.Equal(t, 25, params.Limit)
		assert.Equal(t, "created_at", params.SortBy)
		assert.Equal(t, dto.SortDirAsc, params.SortDir)
	})

	t.Run("defaults applied", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)

		params := dto.QueryParams{}
		params.FromRequest(r, true)

		assert.NotZero(t, params.Page)
		assert.NotZero(t, params.Limit)
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/?page=-1&limit=abc&sort_dir=sideways", nil)

		params := dto.QueryParams{}
		params.FromRequest(r, false)

		assert.Zero(t, params.Page)
		assert.Zero(t, params.Limit)
		assert.Empty(t, params.SortDir)
	})
}

func TestFilterGetWhereClause(t *testing.T) {
	t.Run("eq", func(t *testing.T) {
		filter := dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "reservations"}

		where, args := filter.GetWhereClause()

		assert.Equal(t, "reservations.status = :status", where)
		assert.Equal(t, "pending", args["status"])
	})

	t.Run("like wraps value", func(t *testing.T) {
		filter := dto.Filter{Field: "name", Value: "bistro", Operator: dto.FilterOperatorLike, Table: "restaurants"}

		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "LOWER(restaurants.name) LIKE")
		assert.Equal(t, "%bistro%", args["name"])
	})

	t.Run("in enumerates slice", func(t *testing.T) {
		filter := dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn, Table: "reservations"}

		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "reservations.status IN (:status_0, :status_1)")
		assert.Equal(t, "pending", args["status_0"])
		assert.Equal(t, "confirmed", args["status_1"])
	})
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "restaurant_id", Value: "r1", Operator: dto.FilterOperatorEq, Table: "reservations"},
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "reservations"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Contains(t, where, "AND")
	assert.Len(t, args, 2)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
