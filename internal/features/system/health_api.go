package system

import (
	"context"
	"time"

	"oakcraft/internal/common/api"
	"oakcraft/internal/database"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	mongodb *database.MongodbDB
	hub     *Hub
}

func NewHealthApi(mongodb *database.MongodbDB, hub *Hub) api.Route {
	return &HealthApi{
		mongodb: mongodb,
		hub:     hub,
	}
}

func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := h.mongodb.DB.Client().Ping(ctx, nil); err != nil {
			dbStatus = "down"
		}

		status := fiber.StatusOK
		if dbStatus != "up" {
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(fiber.Map{
			"status":     dbStatus,
			"ws_clients": h.hub.ClientCount(),
		})
	})
}
