package dashboard

import (
	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	DashboardService DashboardService
}

func NewDashboardController(dashboardService DashboardService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
	}
}

// GetSummary godoc
// @Summary      Back-office dashboard summary
// @Description  Order counts per status and revenue per category
// @Tags         dashboard
// @Produce      json
// @Success      200  {object} Summary
// @Router       /api/admin/dashboard [get]
func (ctrl *DashboardController) GetSummary(c *fiber.Ctx) error {
	summary, err := ctrl.DashboardService.Summary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(summary)
}
