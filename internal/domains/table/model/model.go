package model

import (
	"mesa/shared/model"
)

const (
	TableName  = "restaurant_tables"
	EntityName = "table"

	FieldID           = "id"
	FieldRestaurantID = "restaurant_id"
	FieldTableNumber  = "table_number"
	FieldCapacity     = "capacity"
	FieldLocation     = "location"
	FieldIsBookable   = "is_bookable"
)

type Table struct {
	ID           string `db:"id"`
	RestaurantID string `db:"restaurant_id"`
	TableNumber  string `db:"table_number"`
	Capacity     int    `db:"capacity"`
	Location     string `db:"location"`
	IsBookable   bool   `db:"is_bookable"`
	model.Metadata
}
