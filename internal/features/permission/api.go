package permission

import (
	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/config"
	"oakcraft/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PermissionApi struct {
	controller *PermissionController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewPermissionApi(controller *PermissionController, cfg *config.Config, checker middleware.PermissionChecker) *PermissionApi {
	return &PermissionApi{
		controller: controller,
		config:     cfg,
		checker:    checker,
	}
}

// Setup registers permission routes
func (h *PermissionApi) Setup(app *fiber.App) {
	// Any authenticated user may probe its own permissions (UI gating)
	app.Post("/api/permissions/check", middleware.AuthMiddleware(h.config.SkipAuth), h.controller.CheckPermission)

	// Administration of another user's assignment requires users:edit
	users := app.Group("/api/admin/users/:id", middleware.AuthMiddleware(h.config.SkipAuth))
	edit := middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionUsers, common_models.ActionEdit)

	users.Get("/permissions", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionUsers, common_models.ActionView), h.controller.GetAssignment)
	users.Post("/permissions/grant", edit, h.controller.GrantPermission)
	users.Post("/permissions/deny", edit, h.controller.DenyPermission)
	users.Post("/permissions/reset", edit, h.controller.ResetPermission)
	users.Put("/permissions/expiry", edit, h.controller.SetExpiry)
	users.Post("/restrictions", edit, h.controller.AddRestriction)
	users.Delete("/restrictions/:index", edit, h.controller.RemoveRestriction)
	users.Put("/role", edit, h.controller.ChangeRole)
}
