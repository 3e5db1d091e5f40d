package model

import (
	"mesa/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "menus"
	EntityName = "menu"

	FieldID           = "id"
	FieldRestaurantID = "restaurant_id"
	FieldDisplayOrder = "display_order"
	FieldIsActive     = "is_active"
)

const (
	ItemTableName  = "menu_items"
	ItemEntityName = "menu_item"

	ItemFieldMenuID      = "menu_id"
	ItemFieldCategory    = "category"
	ItemFieldIsAvailable = "is_available"
)

type Menu struct {
	ID           string `db:"id"`
	RestaurantID string `db:"restaurant_id"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	DisplayOrder int    `db:"display_order"`
	IsActive     bool   `db:"is_active"`
	model.Metadata
}

type Item struct {
	ID           string          `db:"id"`
	MenuID       string          `db:"menu_id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Price        decimal.Decimal `db:"price"`
	Category     string          `db:"category"`
	IsVegetarian bool            `db:"is_vegetarian"`
	IsVegan      bool            `db:"is_vegan"`
	IsGlutenFree bool            `db:"is_gluten_free"`
	IsAvailable  bool            `db:"is_available"`
	model.Metadata
}
