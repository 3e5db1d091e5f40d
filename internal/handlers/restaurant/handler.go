package restaurant

import (
	"mesa/infras/otel"
	"mesa/internal/domains/restaurant/model"
	"mesa/internal/domains/restaurant/model/dto"
	"mesa/internal/domains/restaurant/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/failure"
	"mesa/shared/validator"
	"mesa/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Restaurant
	otel    otel.Otel
}

func New(service service.Restaurant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers routes on the shared /restaurants group.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.CreateRestaurant)
	router.Get("/", handler.GetRestaurants)
	router.Get("/{restaurantId}", handler.GetRestaurant)
	router.Patch("/{restaurantId}", handler.UpdateRestaurant)
	router.Post("/{restaurantId}/logo", handler.UploadLogo)
	router.Post("/{restaurantId}/cover", handler.UploadCover)
}

// CreateRestaurant handles the creation of a new restaurant.
// @Summary Create a new restaurant
// @Description Create a restaurant with its weekly schedule.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param request body dto.CreateRestaurantRequest true "Create Restaurant Request"
// @Success 201 {object} response.Envelope "Restaurant created successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants [post]
func (handler *Handler) CreateRestaurant(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRestaurant")
	defer scope.End()

	req := dto.CreateRestaurantRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	restaurant, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create restaurant")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Restaurant created successfully")

	response.WithJSON(writer, http.StatusCreated, restaurant)
}

// GetRestaurants retrieves restaurants with optional filtering and pagination.
// @Summary Get all restaurants
// @Description Retrieve restaurants with optional city, cuisine, price range and search filters.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param city query string false "Filter by city"
// @Param cuisine query string false "Filter by cuisine"
// @Param price_range query int false "Filter by price range (1-4)"
// @Param search query string false "Search by name"
// @Success 200 {object} response.Envelope "List of restaurants"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants [get]
func (handler *Handler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	city := r.URL.Query().Get(model.FieldCity)
	cuisine := r.URL.Query().Get(model.FieldCuisine)
	priceRange := r.URL.Query().Get(model.FieldPriceRange)
	search := r.URL.Query().Get(constant.RequestParamSearch)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	if city != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Operator: gDto.FilterOperatorEq,
			Value:    city,
			Table:    model.TableName,
		})
	}

	if cuisine != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCuisine,
			Operator: gDto.FilterOperatorEq,
			Value:    cuisine,
			Table:    model.TableName,
		})
	}

	if priceRange != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPriceRange,
			Operator: gDto.FilterOperatorEq,
			Value:    priceRange,
			Table:    model.TableName,
		})
	}

	if search != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	restaurants, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurants retrieved successfully")

	response.WithPagination(w, http.StatusOK, restaurants.Restaurants, gDto.BuildPagination(restaurants.TotalData, queryParams.Page, queryParams.Limit))
}

// GetRestaurant retrieves a restaurant by its ID or slug.
// @Summary Get a restaurant
// @Description Retrieve a restaurant by UUID or slug, including its schedule and open-now flag.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID or slug"
// @Success 200 {object} response.Envelope "Restaurant details"
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId} [get]
func (handler *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurant")
	defer scope.End()

	idOrSlug := chi.URLParam(r, constant.RequestParamRestaurantID)

	restaurant, err := handler.service.Get(ctx, idOrSlug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurant)
}

// UpdateRestaurant updates an existing restaurant by its ID.
// @Summary Update a restaurant
// @Description Update the details of an existing restaurant.
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.UpdateRestaurantRequest true "Update Restaurant Request"
// @Success 200 {object} response.Envelope "Restaurant updated successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId} [patch]
func (handler *Handler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRestaurant")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamRestaurantID)

	req := dto.UpdateRestaurantRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update restaurant")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant updated successfully")

	response.WithMessage(w, http.StatusOK, "Restaurant updated successfully")
}

// UploadLogo uploads a restaurant logo image to object storage.
// @Summary Upload a restaurant logo
// @Description Upload a PNG/JPEG/WebP logo for the restaurant.
// @Tags Restaurant
// @Accept multipart/form-data
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param file formData file true "Logo image"
// @Success 200 {object} response.Envelope "Logo uploaded successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/logo [post]
func (handler *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadLogo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamRestaurantID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, header, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}
	defer file.Close()

	req := dto.UploadLogoRequest{
		LogoFile: file,
		Logo:     header,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadLogo(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload restaurant logo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant logo uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UploadCover uploads a restaurant cover image to object storage.
// @Summary Upload a restaurant cover image
// @Description Upload a PNG/JPEG/WebP cover image for the restaurant.
// @Tags Restaurant
// @Accept multipart/form-data
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param file formData file true "Cover image"
// @Success 200 {object} response.Envelope "Cover image uploaded successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/cover [post]
func (handler *Handler) UploadCover(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadCover")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamRestaurantID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, header, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}
	defer file.Close()

	req := dto.UploadLogoRequest{
		LogoFile: file,
		Logo:     header,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadCover(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload restaurant cover image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant cover image uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
