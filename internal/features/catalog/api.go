package catalog

import (
	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/config"
	"oakcraft/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CatalogApi struct {
	controller *CatalogController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewCatalogApi(controller *CatalogController, cfg *config.Config, checker middleware.PermissionChecker) *CatalogApi {
	return &CatalogApi{
		controller: controller,
		config:     cfg,
		checker:    checker,
	}
}

// Setup registers catalog routes
func (h *CatalogApi) Setup(app *fiber.App) {
	// Public storefront surface
	app.Get("/api/catalog", h.controller.ListCategories)
	app.Get("/api/catalog/:id", h.controller.GetCategory)

	// Admin surface
	admin := app.Group("/api/admin/catalog", middleware.AuthMiddleware(h.config.SkipAuth))
	admin.Put("/:id", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionProducts, common_models.ActionEdit), h.controller.UpdateCategory)
}
