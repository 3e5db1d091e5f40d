package menu

import (
	"mesa/infras/otel"
	"mesa/internal/domains/menu/model"
	"mesa/internal/domains/menu/model/dto"
	"mesa/internal/domains/menu/service"
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
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers routes on the shared /restaurants group.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/{restaurantId}/menus", handler.CreateMenu)
	router.Get("/{restaurantId}/menus", handler.GetMenus)
	router.Get("/{restaurantId}/menus/{menuId}", handler.GetMenu)
	router.Patch("/{restaurantId}/menus/{menuId}", handler.UpdateMenu)
	router.Delete("/{restaurantId}/menus/{menuId}", handler.DeleteMenu)
	router.Post("/{restaurantId}/menus/{menuId}/items", handler.CreateItem)
	router.Patch("/{restaurantId}/menus/{menuId}/items/{itemId}", handler.UpdateItem)
	router.Delete("/{restaurantId}/menus/{menuId}/items/{itemId}", handler.DeleteItem)
}

// CreateMenu handles the creation of a new menu.
// @Summary Create a menu
// @Description Create a menu within a restaurant.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param request body dto.CreateMenuRequest true "Create Menu Request"
// @Success 201 {object} response.Envelope "Menu created successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/menus [post]
func (handler *Handler) CreateMenu(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenu")
	defer scope.End()

	restaurantID := chi.URLParam(request, constant.RequestParamRestaurantID)

	req := dto.CreateMenuRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	menu, err := handler.service.Create(ctx, restaurantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Menu created successfully")

	response.WithJSON(writer, http.StatusCreated, menu)
}

// GetMenus retrieves the menus of a restaurant.
// @Summary Get all menus
// @Description Retrieve all menus of a restaurant with optional filtering and pagination. Items are not included.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {object} response.Envelope "List of menus"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/menus [get]
func (handler *Handler) GetMenus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenus")
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

	if isActive := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); isActive != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *isActive,
			Table:    model.TableName,
		})
	}

	menus, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menus")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menus retrieved successfully")

	response.WithPagination(w, http.StatusOK, menus.Menus, gDto.BuildPagination(menus.TotalData, queryParams.Page, queryParams.Limit))
}

// GetMenu retrieves a menu with its items.
// @Summary Get a menu by ID
// @Description Retrieve a menu scoped to its restaurant, including its items ordered by category.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param menuId path string true "Menu ID"
// @Success 200 {object} response.Envelope "Menu details"
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/menus/{menuId} [get]
func (handler *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenu")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	menuID := chi.URLParam(r, constant.RequestParamMenuID)

	menu, err := handler.service.Get(ctx, restaurantID, menuID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu retrieved successfully")

	response.WithJSON(w, http.StatusOK, menu)
}

// UpdateMenu updates an existing menu by its ID.
// @Summary Update a menu by ID
// @Description Update the details of an existing menu.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param menuId path string true "Menu ID"
// @Param request body dto.UpdateMenuRequest true "Update Menu Request"
// @Success 200 {object} response.Envelope "Menu updated successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/menus/{menuId} [patch]
func (handler *Handler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenu")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	menuID := chi.URLParam(r, constant.RequestParamMenuID)

	req := dto.UpdateMenuRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, restaurantID, menuID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu updated successfully")

	response.WithMessage(w, http.StatusOK, "Menu updated successfully")
}

// DeleteMenu deletes a menu by its ID.
// @Summary Delete a menu by ID
// @Description Remove a menu and its items from a restaurant.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param menuId path string true "Menu ID"
// @Success 200 {object} response.Envelope "Menu deleted successfully"
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/menus/{menuId} [delete]
func (handler *Handler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenu")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	menuID := chi.URLParam(r, constant.RequestParamMenuID)

	if err := handler.service.Delete(ctx, restaurantID, menuID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu deleted successfully")

	response.WithMessage(w, http.StatusOK, "Menu deleted successfully")
}

// CreateItem adds an item to a menu.
// @Summary Create a menu item
// @Description Add an item to an existing menu.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param menuId path string true "Menu ID"
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} response.Envelope "Menu item created successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/menus/{menuId}/items [post]
func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	restaurantID := chi.URLParam(request, constant.RequestParamRestaurantID)
	menuID := chi.URLParam(request, constant.RequestParamMenuID)

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.CreateItem(ctx, restaurantID, menuID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Menu item created successfully")

	response.WithJSON(writer, http.StatusCreated, item)
}

// UpdateItem updates a menu item by its ID.
// @Summary Update a menu item by ID
// @Description Update the details of an existing menu item.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param menuId path string true "Menu ID"
// @Param itemId path string true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Envelope "Menu item updated successfully"
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/menus/{menuId}/items/{itemId} [patch]
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	menuID := chi.URLParam(r, constant.RequestParamMenuID)
	itemID := chi.URLParam(r, constant.RequestParamItemID)

	req := dto.UpdateItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateItem(ctx, req, restaurantID, menuID, itemID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item updated successfully")

	response.WithMessage(w, http.StatusOK, "Menu item updated successfully")
}

// DeleteItem deletes a menu item by its ID.
// @Summary Delete a menu item by ID
// @Description Remove an item from a menu.
// @Tags Menu
// @Accept json
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Param menuId path string true "Menu ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} response.Envelope "Menu item deleted successfully"
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /v1/restaurants/{restaurantId}/menus/{menuId}/items/{itemId} [delete]
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	restaurantID := chi.URLParam(r, constant.RequestParamRestaurantID)
	menuID := chi.URLParam(r, constant.RequestParamMenuID)
	itemID := chi.URLParam(r, constant.RequestParamItemID)

	if err := handler.service.DeleteItem(ctx, restaurantID, menuID, itemID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item deleted successfully")

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}
