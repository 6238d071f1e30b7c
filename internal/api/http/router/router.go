// Package router wires entity handlers into the HTTP route table. It is
// the only package that knows the URL layout; handlers never inspect
// paths beyond their {id} segment.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/storefront/server/internal/api/http/handler"
	"github.com/storefront/server/internal/api/http/middleware"
	"github.com/storefront/server/internal/logger"
)

// Router builds the HTTP route table for storefront operations.
type Router struct {
	users          *handler.User
	products       *handler.Product
	orders         *handler.Order
	health         *handler.Health
	logger         *logger.Logger
	requestTimeout time.Duration
}

// New creates a new Router instance.
func New(
	users *handler.User,
	products *handler.Product,
	orders *handler.Order,
	health *handler.Health,
	logger *logger.Logger,
	requestTimeout time.Duration,
) *Router {
	return &Router{
		users:          users,
		products:       products,
		orders:         orders,
		health:         health,
		logger:         logger,
		requestTimeout: requestTimeout,
	}
}

// Register builds the chi mux with middleware and all entity routes.
func (rt *Router) Register() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP)
	r.Use(middleware.NewLogging(rt.logger).Handler)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(rt.requestTimeout))

	r.Get("/health", rt.health.Check)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", rt.users.Create)
		r.Get("/", rt.users.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", rt.users.Get)
			r.Put("/", rt.users.Update)
			r.Delete("/", rt.users.Delete)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", rt.products.Create)
		r.Get("/", rt.products.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", rt.products.Get)
			r.Put("/", rt.products.Update)
			r.Delete("/", rt.products.Delete)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", rt.orders.Create)
		r.Get("/", rt.orders.List)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", rt.orders.Get)
			r.Put("/", rt.orders.Update)
			r.Delete("/", rt.orders.Delete)
		})
	})

	return r
}
