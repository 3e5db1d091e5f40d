package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mesa/internal/domains/restaurant/model"
	"mesa/internal/domains/restaurant/model/dto"
)

func mondaySchedule() []model.Schedule {
	return []model.Schedule{
		{DayOfWeek: 1, OpenTime: "09:00:00", CloseTime: "22:00:00"},
	}
}

func TestIsOpenAt(t *testing.T) {
	// 2026-09-07 is a Monday.
	monday := func(hour, minute int) time.Time {
		return time.Date(2026, 9, 7, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		schedules []model.Schedule
		at        time.Time
		want      bool
	}{
		{"within opening hours", mondaySchedule(), monday(12, 0), true},
		{"exactly at opening", mondaySchedule(), monday(9, 0), true},
		{"exactly at closing", mondaySchedule(), monday(22, 0), false},
		{"before opening", mondaySchedule(), monday(8, 59), false},
		{"wrong day", mondaySchedule(), time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC), false},
		{"no schedules", nil, monday(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.IsOpenAt(tt.schedules, tt.at))
		})
	}
}

func TestCreateRestaurantRequest_ToModel(t *testing.T) {
	req := dto.CreateRestaurantRequest{
		Name:    "Test Bistro",
		Cuisine: "French",
		Address: "1 Main St",
		City:    "Springfield",
	}

	restaurant := req.ToModel("test-bistro")

	assert.NotEmpty(t, restaurant.ID)
	assert.Equal(t, "test-bistro", restaurant.Slug)
	assert.Equal(t, 2, restaurant.PriceRange)
	assert.True(t, restaurant.IsActive)
}

func TestCreateRestaurantRequest_ToScheduleModels(t *testing.T) {
	req := dto.CreateRestaurantRequest{
		Name: "Test Bistro",
		Schedules: []dto.ScheduleRequest{
			{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "22:00"},
			{DayOfWeek: 2, OpenTime: "09:00", CloseTime: "22:00"},
		},
	}

	schedules := req.ToScheduleModels("restaurant-1")

	assert.Len(t, schedules, 2)

	for _, sched := range schedules {
		assert.NotEmpty(t, sched.ID)
		assert.Equal(t, "restaurant-1", sched.RestaurantID)
	}
}
