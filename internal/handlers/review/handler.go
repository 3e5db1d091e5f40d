package review

import (
	"mesa/infras/otel"
	"mesa/internal/domains/review/model"
	"mesa/internal/domains/review/model/dto"
	"mesa/internal/domains/review/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/validator"
	"mesa/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers routes on the shared /restaurants group.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/{restaurantId}/reviews", handler.CreateReview)
	router.Get("/{restaurantId}/reviews", handler.GetReviews)
	router.Post("/{restaurantId}/reviews/{reviewId}/respond", handler.RespondReview)
}

// CreateReview handles the creation of a new review.
// @Summary Create a review
// @Description Leave a rating and comment for a restaurant. One review per customer per restaurant.
// @Tags Review
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Envelope "Review created successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/reviews [post]
func (handler *Handler) CreateReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	restaurantID := chi.URLParam(request, constant.RequestParamRestaurantID)

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	review, err := handler.service.Create(ctx, restaurantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Review created successfully")

	response.WithJSON(writer, http.StatusCreated, review)
}

// GetReviews retrieves the reviews of a restaurant.
// @Summary Get all reviews
// @Description Retrieve all reviews of a restaurant with optional rating filter and pagination.
// @Tags Review
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param rating query int false "Filter by rating (1-5)"
// @Success 200 {object} response.Envelope "List of reviews"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
		},
	}

	if rating := r.URL.Query().Get(model.FieldRating); rating != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRating,
			Operator: gDto.FilterOperatorEq,
			Value:    rating,
			Table:    model.TableName,
		})
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully")

	response.WithPagination(w, http.StatusOK, reviews.Reviews, gDto.BuildPagination(reviews.TotalData, queryParams.Page, queryParams.Limit))
}

// RespondReview attaches the restaurant's reply to a review.
// @Summary Respond to a review
// @Description Attach or overwrite the restaurant's reply to a customer review.
// @Tags Review
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param reviewId path string true "Review ID"
// @Param request body dto.RespondReviewRequest true "Respond Review Request"
// @Success 200 {object} response.Envelope "Response saved successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/reviews/{reviewId}/respond [post]
func (handler *Handler) RespondReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RespondReview")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	reviewID := chi.URLParam(r, constant.RequestParamReviewID)

	req := dto.RespondReviewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.Respond(ctx, restaurantID, reviewID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to respond to review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review response saved successfully")

	response.WithJSON(w, http.StatusOK, review)
}
