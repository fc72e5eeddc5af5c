package order

import (
	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/config"
	"oakcraft/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type OrderApi struct {
	controller *OrderController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewOrderApi(controller *OrderController, cfg *config.Config, checker middleware.PermissionChecker) *OrderApi {
	return &OrderApi{
		controller: controller,
		config:     cfg,
		checker:    checker,
	}
}

// Setup registers order routes
func (h *OrderApi) Setup(app *fiber.App) {
	// Customer-facing, ownership checked in the controller
	orders := app.Group("/api/orders", middleware.AuthMiddleware(h.config.SkipAuth))
	orders.Post("/checkout", h.controller.Checkout)
	orders.Get("/", h.controller.ListMyOrders)
	orders.Get("/:id", h.controller.GetMyOrder)
	orders.Post("/:id/confirm", h.controller.ConfirmPayment)

	// Back office
	admin := app.Group("/api/admin/orders", middleware.AuthMiddleware(h.config.SkipAuth))
	admin.Get("/", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionOrders, common_models.ActionView), h.controller.ListOrders)
	admin.Get("/:id", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionOrders, common_models.ActionView), h.controller.GetOrder)
	admin.Put("/:id/status", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionOrders, common_models.ActionEdit), h.controller.UpdateStatus)
	admin.Post("/:id/approve", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionOrders, common_models.ActionApprove), h.controller.ApproveOrder)
}
