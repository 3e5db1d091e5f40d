package model

import (
	"mesa/shared/model"
)

const (
	TableName  = "restaurants"
	EntityName = "restaurant"

	FieldID          = "id"
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldCuisine     = "cuisine"
	FieldCity        = "city"
	FieldPriceRange  = "price_range"
	FieldRating      = "rating"
	FieldReviewCount = "review_count"
	FieldIsActive    = "is_active"
	FieldLogoURL     = "logo_url"
	FieldCoverURL    = "cover_url"
)

const (
	ScheduleTableName  = "restaurant_schedules"
	ScheduleEntityName = "restaurant_schedule"

	ScheduleFieldRestaurantID = "restaurant_id"
	ScheduleFieldDayOfWeek    = "day_of_week"
)

type Restaurant struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Slug        string  `db:"slug"`
	Description string  `db:"description"`
	Cuisine     string  `db:"cuisine"`
	Address     string  `db:"address"`
	City        string  `db:"city"`
	Phone       string  `db:"phone"`
	Email       string  `db:"email"`
	PriceRange  int     `db:"price_range"`
	LogoURL     *string `db:"logo_url"`
	CoverURL    *string `db:"cover_url"`
	Rating      float64 `db:"rating"`
	ReviewCount int     `db:"review_count"`
	IsActive    bool    `db:"is_active"`
	model.Metadata
}

type Schedule struct {
	ID           string `db:"id"`
	RestaurantID string `db:"restaurant_id"`
	DayOfWeek    int    `db:"day_of_week"`
	OpenTime     string `db:"open_time"`
	CloseTime    string `db:"close_time"`
	model.Metadata
}
