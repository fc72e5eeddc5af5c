package middleware

import (
	"context"

	common_models "oakcraft/internal/common/models"
	"oakcraft/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// PermissionChecker resolves whether a user may perform (section, action)
// under the given request context. Implemented by the permission service.
type PermissionChecker interface {
	Check(ctx context.Context, userID string, section common_models.Section, action common_models.Action, rc common_models.RequestContext) (bool, error)
}

// RequirePermission gates a route on the permission evaluator. The request
// context carries the client IP; the evaluator itself defaults the
// timestamp to now. Every admin-visibility decision goes through here,
// never through a hard-coded admin flag.
func RequirePermission(checker PermissionChecker, skipAuth bool, section common_models.Section, action common_models.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skipAuth {
			return c.Next()
		}

		claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		rc := common_models.RequestContext{
			IPAddress: c.IP(),
		}

		allowed, err := checker.Check(c.UserContext(), claims.UserID, section, action, rc)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Insufficient permissions",
			})
		}

		return c.Next()
	}
}
