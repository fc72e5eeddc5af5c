package audit

import (
	"github.com/gofiber/fiber/v2"
)

type AuditController struct {
	AuditService AuditService
}

func NewAuditController(auditService AuditService) *AuditController {
	return &AuditController{
		AuditService: auditService,
	}
}

// ListLogs godoc
// @Summary      List audit logs
// @Description  List audit log entries, optionally filtered by module
// @Tags         audit
// @Produce      json
// @Param        module query string false "Module name"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Page offset"
// @Success      200  {object} map[string]interface{}
// @Failure      500  {string} string "Failed to list audit logs"
// @Router       /api/admin/audit [get]
func (ctrl *AuditController) ListLogs(c *fiber.Ctx) error {
	module := c.Query("module")
	limit := int64(c.QueryInt("limit", 50))
	offset := int64(c.QueryInt("offset", 0))

	entries, total, err := ctrl.AuditService.ListLogs(c.UserContext(), module, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"entries": entries,
		"total":   total,
	})
}
