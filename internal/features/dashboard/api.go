package dashboard

import (
	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/config"
	"oakcraft/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	controller *DashboardController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewDashboardApi(controller *DashboardController, cfg *config.Config, checker middleware.PermissionChecker) *DashboardApi {
	return &DashboardApi{
		controller: controller,
		config:     cfg,
		checker:    checker,
	}
}

// Setup registers dashboard routes
func (h *DashboardApi) Setup(app *fiber.App) {
	admin := app.Group("/api/admin/dashboard", middleware.AuthMiddleware(h.config.SkipAuth))
	admin.Get("/", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionAnalytics, common_models.ActionView), h.controller.GetSummary)
}
