package pricing

import (
	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/config"
	"oakcraft/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PricingApi struct {
	controller *PricingController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewPricingApi(controller *PricingController, cfg *config.Config, checker middleware.PermissionChecker) *PricingApi {
	return &PricingApi{
		controller: controller,
		config:     cfg,
		checker:    checker,
	}
}

// Setup registers pricing routes
func (h *PricingApi) Setup(app *fiber.App) {
	// Storefront quoting is public: the configurator reprices on every change
	app.Post("/api/quote", h.controller.GetQuote)
	app.Get("/api/quote/preview", h.controller.GetQuoteFromEncoded)

	// Rule management
	admin := app.Group("/api/admin/pricing", middleware.AuthMiddleware(h.config.SkipAuth))
	admin.Get("/rules", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionPricing, common_models.ActionView), h.controller.ListRules)
	admin.Put("/rules", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionPricing, common_models.ActionEdit), h.controller.UpsertRule)
	admin.Delete("/rules/:id", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionPricing, common_models.ActionDelete), h.controller.DeleteRule)
}
