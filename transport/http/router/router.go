package router

import (
	"mesa/internal/handlers/booking"
	"mesa/internal/handlers/menu"
	"mesa/internal/handlers/restaurant"
	"mesa/internal/handlers/review"
	"mesa/internal/handlers/table"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Restaurant restaurant.Handler
	Table      table.Handler
	Booking    booking.Handler
	Review     review.Handler
	Menu       menu.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)

		// Every restaurant-scoped handler registers flat method routes on
		// the shared /restaurants group so their patterns never shadow one
		// another.
		routerGroup.Route("/restaurants", func(restaurantGroup chi.Router) {
			r.DomainHandlers.Restaurant.Router(restaurantGroup)
			r.DomainHandlers.Table.Router(restaurantGroup)
			r.DomainHandlers.Booking.RestaurantRouter(restaurantGroup)
			r.DomainHandlers.Review.Router(restaurantGroup)
			r.DomainHandlers.Menu.Router(restaurantGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
