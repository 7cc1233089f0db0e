package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	router *chi.Mux

	users   *UserHandler
	trains  *TrainHandler
	tickets *TicketHandler
}

func NewHandler(log *zap.Logger, users *UserHandler, trains *TrainHandler, tickets *TicketHandler) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(RequestLogger(log))
	router.Use(middleware.Recoverer)
	router.Use(Brotli)

	h := &Handler{
		router:  router,
		users:   users,
		trains:  trains,
		tickets: tickets,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.users.List)
			r.Post("/", h.users.Create)
			r.Get("/{id}", h.users.Get)
			r.Put("/{id}", h.users.Update)
			r.Delete("/{id}", h.users.Delete)
		})

		r.Route("/trains", func(r chi.Router) {
			r.Get("/", h.trains.List)
			r.Post("/", h.trains.Create)
			r.Get("/{id}", h.trains.Get)
			r.Put("/{id}", h.trains.Update)
			r.Delete("/{id}", h.trains.Delete)
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", h.tickets.List)
			r.Post("/", h.tickets.Create)
			r.Get("/{id}", h.tickets.Get)
			r.Put("/{id}", h.tickets.Update)
			r.Delete("/{id}", h.tickets.Delete)
		})
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
