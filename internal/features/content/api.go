package content

import (
	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/config"
	"oakcraft/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ContentApi struct {
	controller *ContentController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewContentApi(controller *ContentController, cfg *config.Config, checker middleware.PermissionChecker) *ContentApi {
	return &ContentApi{
		controller: controller,
		config:     cfg,
		checker:    checker,
	}
}

// Setup registers content routes
func (h *ContentApi) Setup(app *fiber.App) {
	app.Get("/api/pages", h.controller.ListPublished)
	app.Get("/api/pages/:slug", h.controller.GetPage)

	admin := app.Group("/api/admin/pages", middleware.AuthMiddleware(h.config.SkipAuth))
	admin.Get("/", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionContent, common_models.ActionView), h.controller.ListAll)
	admin.Put("/", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionContent, common_models.ActionEdit), h.controller.SavePage)
	admin.Delete("/:slug", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionContent, common_models.ActionDelete), h.controller.DeletePage)
}
