package routes

import (
	"connectus/internal/delivery/http/handler"
	v1 "connectus/internal/delivery/http/routes/v1"
	"connectus/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	deps   v1.Deps
	health *handler.HealthHandler
	events *ws.Handler
}

func NewRegistry(deps v1.Deps, events *ws.Handler) *Registry {
	return &Registry{
		deps:   deps,
		health: handler.NewHealthHandler(deps.DB),
		events: events,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	if r.events != nil {
		app.Get("/ws", r.events.HandleEventsWS)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
