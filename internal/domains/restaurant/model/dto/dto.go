package dto

import (
	"mesa/internal/domains/restaurant/model"
	"mesa/shared"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

type ScheduleRequest struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"min=0,max=6"`
	OpenTime  string `json:"openTime"  validate:"required,hhmm"`
	CloseTime string `json:"closeTime" validate:"required,hhmm"`
}

type CreateRestaurantRequest struct {
	Name        string            `json:"name"        validate:"required,max=150"`
	Description string            `json:"description" validate:"omitempty"`
	Cuisine     string            `json:"cuisine"     validate:"required,max=100"`
	Address     string            `json:"address"     validate:"required"`
	City        string            `json:"city"        validate:"required,max=100"`
	Phone       string            `json:"phone"       validate:"omitempty,max=30"`
	Email       string            `json:"email"       validate:"omitempty,email,max=150"`
	PriceRange  int               `json:"priceRange"  validate:"omitempty,min=1,max=4"`
	Schedules   []ScheduleRequest `json:"schedules"   validate:"omitempty,dive"`
}

func (c *CreateRestaurantRequest) ToModel(slug string) model.Restaurant {
	priceRange := c.PriceRange
	if priceRange == 0 {
		priceRange = 2
	}

	return model.Restaurant{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Slug:        slug,
		Description: c.Description,
		Cuisine:     c.Cuisine,
		Address:     c.Address,
		City:        c.City,
		Phone:       c.Phone,
		Email:       c.Email,
		PriceRange:  priceRange,
		IsActive:    true,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

func (c *CreateRestaurantRequest) ToScheduleModels(restaurantID string) []model.Schedule {
	schedules := make([]model.Schedule, len(c.Schedules))
	for i, sched := range c.Schedules {
		schedules[i] = model.Schedule{
			ID:           uuid.NewString(),
			RestaurantID: restaurantID,
			DayOfWeek:    sched.DayOfWeek,
			OpenTime:     sched.OpenTime,
			CloseTime:    sched.CloseTime,
			Metadata: gModel.Metadata{
				CreatedAt: timezone.Now(),
				UpdatedAt: timezone.Now(),
			},
		}
	}

	return schedules
}

type UpdateRestaurantRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=150"`
	Description string `db:"description" json:"description" validate:"omitempty"`
	Cuisine     string `db:"cuisine"     json:"cuisine"     validate:"omitempty,max=100"`
	Address     string `db:"address"     json:"address"     validate:"omitempty"`
	City        string `db:"city"        json:"city"        validate:"omitempty,max=100"`
	Phone       string `db:"phone"       json:"phone"       validate:"omitempty,max=30"`
	Email       string `db:"email"       json:"email"       validate:"omitempty,email,max=150"`
	PriceRange  int    `db:"price_range" json:"priceRange"  validate:"omitempty,min=1,max=4"`
	IsActive    *bool  `db:"is_active"   json:"isActive"    validate:"omitempty"`
}

type UploadLogoRequest struct {
	LogoFile multipart.File
	Logo     *multipart.FileHeader `validate:"required,maxfilesize=5242880,mimetypes=image/png image/jpeg image/webp"`
}

type ScheduleResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

type RestaurantResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	Cuisine     string             `json:"cuisine"`
	Address     string             `json:"address"`
	City        string             `json:"city"`
	Phone       string             `json:"phone"`
	Email       string             `json:"email"`
	PriceRange  int                `json:"priceRange"`
	LogoURL     *string            `json:"logoUrl"`
	CoverURL    *string            `json:"coverUrl"`
	Rating      float64            `json:"rating"`
	ReviewCount int                `json:"reviewCount"`
	IsActive    bool               `json:"isActive"`
	IsOpen      bool               `json:"isOpen"`
	Schedules   []ScheduleResponse `json:"schedules,omitempty"`
	gDto.Metadata
}

func (r *RestaurantResponse) FromModel(mod model.Restaurant, schedules []model.Schedule) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Slug = mod.Slug
	r.Description = mod.Description
	r.Cuisine = mod.Cuisine
	r.Address = mod.Address
	r.City = mod.City
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.PriceRange = mod.PriceRange
	r.LogoURL = mod.LogoURL
	r.CoverURL = mod.CoverURL
	r.Rating = mod.Rating
	r.ReviewCount = mod.ReviewCount
	r.IsActive = mod.IsActive
	r.IsOpen = IsOpenAt(schedules, timezone.Now())
	r.Metadata.FromModel(mod.Metadata)

	r.Schedules = make([]ScheduleResponse, len(schedules))
	for i, sched := range schedules {
		r.Schedules[i] = ScheduleResponse{
			DayOfWeek: sched.DayOfWeek,
			OpenTime:  shortTime(sched.OpenTime),
			CloseTime: shortTime(sched.CloseTime),
		}
	}
}

type GetRestaurantsResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetRestaurantsResponse) FromModels(models []model.Restaurant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Restaurants = make([]RestaurantResponse, len(models))
	for i, mod := range models {
		r.Restaurants[i].FromModel(mod, nil)
	}
}

type UploadLogoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

func (r *UploadLogoResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

// shortTime trims a TIME column value like "19:30:00" down to "19:30".
func shortTime(value string) string {
	if len(value) > len(constant.TimeOnlyFormat) {
		return value[:len(constant.TimeOnlyFormat)]
	}

	return value
}

// IsOpenAt reports whether the restaurant is open at the given instant
// according to its weekly schedules.
func IsOpenAt(schedules []model.Schedule, at time.Time) bool {
	day := int(at.Weekday())
	now := at.Format(constant.TimeOnlyFormat)

	for _, sched := range schedules {
		if sched.DayOfWeek != day {
			continue
		}

		openAt := shortTime(sched.OpenTime)
		closeAt := shortTime(sched.CloseTime)

		if openAt <= now && now < closeAt {
			return true
		}
	}

	return false
}
