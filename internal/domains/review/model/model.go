package model

import (
	"mesa/shared/model"
	"time"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID           = "id"
	FieldRestaurantID = "restaurant_id"
	FieldCustomerID   = "customer_id"
	FieldRating       = "rating"
	FieldResponse     = "response"
	FieldRespondedAt  = "responded_at"
)

type Review struct {
	ID           string     `db:"id"`
	RestaurantID string     `db:"restaurant_id"`
	CustomerID   string     `db:"customer_id"`
	CustomerName string     `db:"customer_name"`
	Rating       int        `db:"rating"`
	Comment      string     `db:"comment"`
	Response     *string    `db:"response"`
	RespondedAt  *time.Time `db:"responded_at"`
	model.Metadata
}
