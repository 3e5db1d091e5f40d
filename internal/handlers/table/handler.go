package table

import (
	"mesa/infras/otel"
	"mesa/internal/domains/table/model"
	"mesa/internal/domains/table/model/dto"
	"mesa/internal/domains/table/service"
	"mesa/shared"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/validator"
	"mesa/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Table
	otel    otel.Otel
}

func New(service service.Table, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers routes on the shared /restaurants group.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/{restaurantId}/tables", handler.CreateTable)
	router.Get("/{restaurantId}/tables", handler.GetTables)
	router.Get("/{restaurantId}/tables/{id}", handler.GetTable)
	router.Patch("/{restaurantId}/tables/{id}", handler.UpdateTable)
	router.Delete("/{restaurantId}/tables/{id}", handler.DeleteTable)
}

// CreateTable handles the creation of a new table for a restaurant.
// @Summary Create a new table
// @Description Create a table within a restaurant.
// @Tags Table
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.CreateTableRequest true "Create Table Request"
// @Success 201 {object} response.Envelope "Table created successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/tables [post]
func (handler *Handler) CreateTable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTable")
	defer scope.End()

	restaurantID := chi.URLParam(request, constant.RequestParamRestaurantID)

	req := dto.CreateTableRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	table, err := handler.service.Create(ctx, restaurantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Table created successfully")

	response.WithJSON(writer, http.StatusCreated, table)
}

// GetTables retrieves all tables of a restaurant.
// @Summary Get all tables
// @Description Retrieve all tables of a restaurant with optional filtering and pagination.
// @Tags Table
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_bookable query bool false "Filter by bookable flag"
// @Success 200 {object} response.Envelope "List of tables"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/tables [get]
func (handler *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTables")
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

	if isBookable := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsBookable)); isBookable != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsBookable,
			Operator: gDto.FilterOperatorEq,
			Value:    *isBookable,
			Table:    model.TableName,
		})
	}

	tables, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tables retrieved successfully")

	response.WithPagination(w, http.StatusOK, tables.Tables, gDto.BuildPagination(tables.TotalData, queryParams.Page, queryParams.Limit))
}

// GetTable retrieves a table by its ID.
// @Summary Get a table by ID
// @Description Retrieve a table scoped to its restaurant.
// @Tags Table
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Table ID"
// @Success 200 {object} response.Envelope "Table details"
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/tables/{id} [get]
func (handler *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTable")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	id := chi.URLParam(r, constant.RequestParamID)

	table, err := handler.service.Get(ctx, restaurantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table retrieved successfully")

	response.WithJSON(w, http.StatusOK, table)
}

// UpdateTable updates an existing table by its ID.
// @Summary Update a table by ID
// @Description Update the details of an existing table.
// @Tags Table
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Table ID"
// @Param request body dto.UpdateTableRequest true "Update Table Request"
// @Success 200 {object} response.Envelope "Table updated successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/tables/{id} [patch]
func (handler *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTable")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, restaurantID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table updated successfully")

	response.WithMessage(w, http.StatusOK, "Table updated successfully")
}

// DeleteTable deletes a table by its ID.
// @Summary Delete a table by ID
// @Description Remove a table from a restaurant.
// @Tags Table
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param id path string true "Table ID"
// @Success 200 {object} response.Envelope "Table deleted successfully"
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/tables/{id} [delete]
func (handler *Handler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTable")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, restaurantID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table deleted successfully")

	response.WithMessage(w, http.StatusOK, "Table deleted successfully")
}
