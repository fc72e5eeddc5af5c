package permission

import (
	"context"
	"time"

	common_models "oakcraft/internal/common/models"
	"oakcraft/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PermissionController struct {
	PermissionService PermissionService
}

func NewPermissionController(permissionService PermissionService) *PermissionController {
	return &PermissionController{
		PermissionService: permissionService,
	}
}

type PermissionRequest struct {
	Section common_models.Section `json:"section"`
	Action  common_models.Action  `json:"action"`
}

type ExpiryRequest struct {
	ExpiresAt *time.Time `json:"expires_at"`
}

type RoleRequest struct {
	Role common_models.Role `json:"role"`
}

// CheckPermission godoc
// @Summary      Check a permission for the current user
// @Description  Evaluate whether the authenticated user may perform (section, action)
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        input body PermissionRequest true "Permission to check"
// @Success      200  {object} map[string]bool
// @Failure      400  {string} string "Invalid request body"
// @Router       /api/permissions/check [post]
func (ctrl *PermissionController) CheckPermission(c *fiber.Ctx) error {
	var req PermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	rc := common_models.RequestContext{IPAddress: c.IP()}
	allowed, err := ctrl.PermissionService.Check(c.UserContext(), claims.UserID, req.Section, req.Action, rc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"allowed": allowed})
}

// GetAssignment godoc
// @Summary      Get a user's permission assignment
// @Tags         permissions
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object} models.PermissionAssignment
// @Failure      404  {string} string "User not found"
// @Router       /api/admin/users/{id}/permissions [get]
func (ctrl *PermissionController) GetAssignment(c *fiber.Ctx) error {
	assignment, err := ctrl.PermissionService.GetAssignment(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(assignment)
}

// GrantPermission godoc
// @Summary      Grant a permission override
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        input body PermissionRequest true "Permission"
// @Success      200  {object} map[string]string
// @Router       /api/admin/users/{id}/permissions/grant [post]
func (ctrl *PermissionController) GrantPermission(c *fiber.Ctx) error {
	return ctrl.mutatePermission(c, ctrl.PermissionService.Grant, "Permission granted")
}

// DenyPermission godoc
// @Summary      Deny a permission override
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        input body PermissionRequest true "Permission"
// @Success      200  {object} map[string]string
// @Router       /api/admin/users/{id}/permissions/deny [post]
func (ctrl *PermissionController) DenyPermission(c *fiber.Ctx) error {
	return ctrl.mutatePermission(c, ctrl.PermissionService.Deny, "Permission denied")
}

// ResetPermission godoc
// @Summary      Reset a permission override
// @Description  Remove the permission from both grant and deny lists
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        input body PermissionRequest true "Permission"
// @Success      200  {object} map[string]string
// @Router       /api/admin/users/{id}/permissions/reset [post]
func (ctrl *PermissionController) ResetPermission(c *fiber.Ctx) error {
	return ctrl.mutatePermission(c, ctrl.PermissionService.Reset, "Permission reset")
}

func (ctrl *PermissionController) mutatePermission(c *fiber.Ctx, op func(ctx context.Context, userID string, p common_models.Permission) error, message string) error {
	var req PermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	p := common_models.Permission{Section: req.Section, Action: req.Action}
	if err := op(c.UserContext(), c.Params("id"), p); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": message})
}

// AddRestriction godoc
// @Summary      Add an access restriction
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        input body models.AccessRestriction true "Restriction"
// @Success      200  {object} map[string]string
// @Router       /api/admin/users/{id}/restrictions [post]
func (ctrl *PermissionController) AddRestriction(c *fiber.Ctx) error {
	var restriction common_models.AccessRestriction
	if err := c.BodyParser(&restriction); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.PermissionService.AddRestriction(c.UserContext(), c.Params("id"), restriction); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Restriction added"})
}

// RemoveRestriction godoc
// @Summary      Remove an access restriction by index
// @Tags         permissions
// @Produce      json
// @Param        id path string true "User ID"
// @Param        index path int true "Restriction index"
// @Success      200  {object} map[string]string
// @Router       /api/admin/users/{id}/restrictions/{index} [delete]
func (ctrl *PermissionController) RemoveRestriction(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid restriction index",
		})
	}

	if err := ctrl.PermissionService.RemoveRestriction(c.UserContext(), c.Params("id"), index); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Restriction removed"})
}

// SetExpiry godoc
// @Summary      Set or clear assignment expiry
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        input body ExpiryRequest true "Expiry (null clears)"
// @Success      200  {object} map[string]string
// @Router       /api/admin/users/{id}/permissions/expiry [put]
func (ctrl *PermissionController) SetExpiry(c *fiber.Ctx) error {
	var req ExpiryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.PermissionService.SetExpiry(c.UserContext(), c.Params("id"), req.ExpiresAt); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Expiry updated"})
}

// ChangeRole godoc
// @Summary      Change a user's role
// @Description  Role changes to or from super_admin are rejected
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        input body RoleRequest true "New role"
// @Success      200  {object} map[string]string
// @Router       /api/admin/users/{id}/role [put]
func (ctrl *PermissionController) ChangeRole(c *fiber.Ctx) error {
	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.PermissionService.ChangeRole(c.UserContext(), c.Params("id"), req.Role); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Role updated"})
}
