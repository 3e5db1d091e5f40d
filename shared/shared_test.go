package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mesa/shared"
	"mesa/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *bool
	}{
		{"true", "true", boolPtr(true)},
		{"false", "false", boolPtr(false)},
		{"numeric true", "1", boolPtr(true)},
		{"empty", "", nil},
		{"garbage", "maybe", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.value)

			if tt.want == nil {
				assert.Nil(t, got)
			} else if assert.NotNil(t, got) {
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"exact division", 20, 10, 2},
		{"with remainder", 21, 10, 3},
		{"zero total", 0, 10, 1},
		{"zero limit", 10, 0, 1},
		{"single page", 5, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name     string `db:"name"`
		Capacity int    `db:"capacity"`
		Ignored  string
	}

	fields := shared.TransformFields(updateRequest{Name: "T1", Ignored: "skip"})

	assert.Equal(t, "T1", fields["name"])
	assert.NotContains(t, fields, "capacity")
	assert.NotContains(t, fields, "")
	assert.Contains(t, fields, "updated_at")
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("id-1", "id", "restaurants")

	if assert.Len(t, filter.Filters, 1) {
		f, ok := filter.Filters[0].(dto.Filter)
		assert.True(t, ok)
		assert.Equal(t, "id", f.Field)
		assert.Equal(t, "id-1", f.Value)
		assert.Equal(t, "restaurants", f.Table)
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "restaurant:get:id-1", shared.BuildCacheKey("restaurant:get", "id-1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	keyWithoutFilter := shared.BuildCacheKeyWithQuery("reservation:gets", params, dto.FilterGroup{})
	keyWithFilter := shared.BuildCacheKeyWithQuery("reservation:gets", params, shared.FilterByID("id-1", "restaurant_id", "reservations"))

	assert.NotEqual(t, keyWithoutFilter, keyWithFilter)
	assert.Contains(t, keyWithoutFilter, "reservation:gets")
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"simple name", "Test Bistro", "test-bistro"},
		{"special characters", "Café & Grill!", "caf-grill"},
		{"collapsed dashes", "A  --  B", "a-b"},
		{"leading and trailing noise", "  ~Pasta Place~  ", "pasta-place"},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.Slugify(tt.value))
		})
	}
}

func boolPtr(value bool) *bool {
	return &value
}
