package dto

import (
	"mesa/internal/domains/review/model"
	"mesa/shared"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	CustomerID   string `json:"customerId"   validate:"required,uuid"`
	CustomerName string `json:"customerName" validate:"required,max=150"`
	Rating       int    `json:"rating"       validate:"required,min=1,max=5"`
	Comment      string `json:"comment"      validate:"omitempty,max=2000"`
}

func (c *CreateReviewRequest) ToModel(restaurantID string) model.Review {
	return model.Review{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		CustomerID:   c.CustomerID,
		CustomerName: c.CustomerName,
		Rating:       c.Rating,
		Comment:      c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type RespondReviewRequest struct {
	Response string `json:"response" validate:"required,max=2000"`
}

type ReviewResponse struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurantId"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Rating       int     `json:"rating"`
	Comment      string  `json:"comment"`
	Response     *string `json:"response"`
	RespondedAt  *string `json:"respondedAt"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(mod model.Review) {
	r.ID = mod.ID
	r.RestaurantID = mod.RestaurantID
	r.CustomerID = mod.CustomerID
	r.CustomerName = mod.CustomerName
	r.Rating = mod.Rating
	r.Comment = mod.Comment
	r.Response = mod.Response
	r.RespondedAt = formatOptional(mod.RespondedAt)
	r.Metadata.FromModel(mod.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
