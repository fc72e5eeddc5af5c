package basket

import (
	"oakcraft/internal/config"
	"oakcraft/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type BasketApi struct {
	controller *BasketController
	config     *config.Config
}

func NewBasketApi(controller *BasketController, cfg *config.Config) *BasketApi {
	return &BasketApi{
		controller: controller,
		config:     cfg,
	}
}

// Setup registers basket routes. Baskets belong to the signed-in user, so
// no section permission is involved, just authentication.
func (h *BasketApi) Setup(app *fiber.App) {
	basket := app.Group("/api/basket", middleware.AuthMiddleware(h.config.SkipAuth))

	basket.Get("/", h.controller.GetBasket)
	basket.Delete("/", h.controller.ClearBasket)
	basket.Post("/items", h.controller.AddItem)
	basket.Put("/items/:itemId", h.controller.UpdateQuantity)
	basket.Delete("/items/:itemId", h.controller.RemoveItem)
}
