package dto

import (
	"mesa/internal/domains/menu/model"
	"mesa/shared"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateMenuRequest struct {
	Name         string `json:"name"         validate:"required,max=150"`
	Description  string `json:"description"  validate:"omitempty"`
	DisplayOrder int    `json:"displayOrder" validate:"omitempty,min=0"`
	IsActive     *bool  `json:"isActive"     validate:"omitempty"`
}

func (c *CreateMenuRequest) ToModel(restaurantID string) model.Menu {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return model.Menu{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Name:         c.Name,
		Description:  c.Description,
		DisplayOrder: c.DisplayOrder,
		IsActive:     isActive,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateMenuRequest struct {
	Name         string `db:"name"          json:"name"         validate:"omitempty,max=150"`
	Description  string `db:"description"   json:"description"  validate:"omitempty"`
	DisplayOrder *int   `db:"display_order" json:"displayOrder" validate:"omitempty,min=0"`
	IsActive     *bool  `db:"is_active"     json:"isActive"     validate:"omitempty"`
}

type CreateItemRequest struct {
	Name         string          `json:"name"         validate:"required,max=150"`
	Description  string          `json:"description"  validate:"omitempty"`
	Price        decimal.Decimal `json:"price"        validate:"required"`
	Category     string          `json:"category"     validate:"omitempty,max=100"`
	IsVegetarian bool            `json:"isVegetarian"`
	IsVegan      bool            `json:"isVegan"`
	IsGlutenFree bool            `json:"isGlutenFree"`
	IsAvailable  *bool           `json:"isAvailable"  validate:"omitempty"`
}

func (c *CreateItemRequest) ToModel(menuID string) model.Item {
	isAvailable := true
	if c.IsAvailable != nil {
		isAvailable = *c.IsAvailable
	}

	return model.Item{
		ID:           uuid.NewString(),
		MenuID:       menuID,
		Name:         c.Name,
		Description:  c.Description,
		Price:        c.Price,
		Category:     c.Category,
		IsVegetarian: c.IsVegetarian,
		IsVegan:      c.IsVegan,
		IsGlutenFree: c.IsGlutenFree,
		IsAvailable:  isAvailable,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateItemRequest struct {
	Name         string           `db:"name"           json:"name"         validate:"omitempty,max=150"`
	Description  string           `db:"description"    json:"description"  validate:"omitempty"`
	Price        *decimal.Decimal `db:"price"          json:"price"        validate:"omitempty"`
	Category     string           `db:"category"       json:"category"     validate:"omitempty,max=100"`
	IsVegetarian *bool            `db:"is_vegetarian"  json:"isVegetarian" validate:"omitempty"`
	IsVegan      *bool            `db:"is_vegan"       json:"isVegan"      validate:"omitempty"`
	IsGlutenFree *bool            `db:"is_gluten_free" json:"isGlutenFree" validate:"omitempty"`
	IsAvailable  *bool            `db:"is_available"   json:"isAvailable"  validate:"omitempty"`
}

type ItemResponse struct {
	ID           string          `json:"id"`
	MenuID       string          `json:"menuId"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	IsVegetarian bool            `json:"isVegetarian"`
	IsVegan      bool            `json:"isVegan"`
	IsGlutenFree bool            `json:"isGlutenFree"`
	IsAvailable  bool            `json:"isAvailable"`
	gDto.Metadata
}

func (r *ItemResponse) FromModel(mod model.Item) {
	r.ID = mod.ID
	r.MenuID = mod.MenuID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Price = mod.Price
	r.Category = mod.Category
	r.IsVegetarian = mod.IsVegetarian
	r.IsVegan = mod.IsVegan
	r.IsGlutenFree = mod.IsGlutenFree
	r.IsAvailable = mod.IsAvailable
	r.Metadata.FromModel(mod.Metadata)
}

type MenuResponse struct {
	ID           string         `json:"id"`
	RestaurantID string         `json:"restaurantId"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	DisplayOrder int            `json:"displayOrder"`
	IsActive     bool           `json:"isActive"`
	Items        []ItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (r *MenuResponse) FromModel(mod model.Menu, items []model.Item) {
	r.ID = mod.ID
	r.RestaurantID = mod.RestaurantID
	r.Name = mod.Name
	r.Description = mod.Description
	r.DisplayOrder = mod.DisplayOrder
	r.IsActive = mod.IsActive
	r.Metadata.FromModel(mod.Metadata)

	if items == nil {
		return
	}

	r.Items = make([]ItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}

type GetMenusResponse struct {
	Menus     []MenuResponse `json:"menus"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetMenusResponse) FromModels(models []model.Menu, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Menus = make([]MenuResponse, len(models))
	for i, mod := range models {
		r.Menus[i].FromModel(mod, nil)
	}
}
