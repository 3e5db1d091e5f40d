package dto

import (
	"mesa/internal/domains/table/model"
	"mesa/shared"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"

	"github.com/google/uuid"
)

type CreateTableRequest struct {
	TableNumber string `json:"tableNumber" validate:"required,max=30"`
	Capacity    int    `json:"capacity"    validate:"required,min=1,max=50"`
	Location    string `json:"location"    validate:"omitempty,max=50"`
	IsBookable  *bool  `json:"isBookable"  validate:"omitempty"`
}

func (c *CreateTableRequest) ToModel(restaurantID string) model.Table {
	isBookable := true
	if c.IsBookable != nil {
		isBookable = *c.IsBookable
	}

	return model.Table{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		TableNumber:  c.TableNumber,
		Capacity:     c.Capacity,
		Location:     c.Location,
		IsBookable:   isBookable,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateTableRequest struct {
	TableNumber string `db:"table_number" json:"tableNumber" validate:"omitempty,max=30"`
	Capacity    int    `db:"capacity"     json:"capacity"    validate:"omitempty,min=1,max=50"`
	Location    string `db:"location"     json:"location"    validate:"omitempty,max=50"`
	IsBookable  *bool  `db:"is_bookable"  json:"isBookable"  validate:"omitempty"`
}

type TableResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	TableNumber  string `json:"tableNumber"`
	Capacity     int    `json:"capacity"`
	Location     string `json:"location"`
	IsBookable   bool   `json:"isBookable"`
	gDto.Metadata
}

func (r *TableResponse) FromModel(mod model.Table) {
	r.ID = mod.ID
	r.RestaurantID = mod.RestaurantID
	r.TableNumber = mod.TableNumber
	r.Capacity = mod.Capacity
	r.Location = mod.Location
	r.IsBookable = mod.IsBookable
	r.Metadata.FromModel(mod.Metadata)
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTablesResponse) FromModels(models []model.Table, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tables = make([]TableResponse, len(models))
	for i, mod := range models {
		r.Tables[i].FromModel(mod)
	}
}
