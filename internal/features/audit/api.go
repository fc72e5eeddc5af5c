package audit

import (
	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/config"
	"oakcraft/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuditApi struct {
	controller *AuditController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewAuditApi(controller *AuditController, cfg *config.Config, checker middleware.PermissionChecker) *AuditApi {
	return &AuditApi{
		controller: controller,
		config:     cfg,
		checker:    checker,
	}
}

// Setup registers audit routes
func (h *AuditApi) Setup(app *fiber.App) {
	admin := app.Group("/api/admin/audit", middleware.AuthMiddleware(h.config.SkipAuth))

	admin.Get("/", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionSettings, common_models.ActionView), h.controller.ListLogs)
}
