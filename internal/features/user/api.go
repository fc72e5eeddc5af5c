package user

import (
	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/config"
	"oakcraft/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	config     *config.Config
	checker    middleware.PermissionChecker
}

func NewUserApi(controller *UserController, cfg *config.Config, checker middleware.PermissionChecker) *UserApi {
	return &UserApi{
		controller: controller,
		config:     cfg,
		checker:    checker,
	}
}

// Setup registers user management routes
func (h *UserApi) Setup(app *fiber.App) {
	admin := app.Group("/api/admin/users", middleware.AuthMiddleware(h.config.SkipAuth))

	admin.Get("/", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionUsers, common_models.ActionView), h.controller.ListUsers)
	admin.Post("/", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionUsers, common_models.ActionCreate), h.controller.CreateUser)
	admin.Get("/:id", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionUsers, common_models.ActionView), h.controller.GetUser)
	admin.Put("/:id", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionUsers, common_models.ActionEdit), h.controller.UpdateUser)
	admin.Delete("/:id", middleware.RequirePermission(h.checker, h.config.SkipAuth, common_models.SectionUsers, common_models.ActionDelete), h.controller.DeleteUser)
}
