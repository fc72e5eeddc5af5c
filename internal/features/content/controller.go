package content

import (
	"github.com/gofiber/fiber/v2"
)

type ContentController struct {
	ContentService ContentService
}

func NewContentController(contentService ContentService) *ContentController {
	return &ContentController{
		ContentService: contentService,
	}
}

// ListPublished godoc
// @Summary      List published pages
// @Tags         content
// @Produce      json
// @Success      200  {array} Page
// @Router       /api/pages [get]
func (ctrl *ContentController) ListPublished(c *fiber.Ctx) error {
	pages, err := ctrl.ContentService.ListPublished(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(pages)
}

// GetPage godoc
// @Summary      Get a published page by slug
// @Tags         content
// @Produce      json
// @Param        slug path string true "Page slug"
// @Success      200  {object} Page
// @Failure      404  {string} string "Page not found"
// @Router       /api/pages/{slug} [get]
func (ctrl *ContentController) GetPage(c *fiber.Ctx) error {
	page, err := ctrl.ContentService.GetPublished(c.UserContext(), c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}
	return c.JSON(page)
}

// ListAll godoc
// @Summary      List all pages including drafts
// @Tags         content
// @Produce      json
// @Success      200  {array} Page
// @Router       /api/admin/pages [get]
func (ctrl *ContentController) ListAll(c *fiber.Ctx) error {
	pages, err := ctrl.ContentService.ListAll(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(pages)
}

// SavePage godoc
// @Summary      Create or update a page
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        input body SavePageInput true "Page"
// @Success      200  {object} Page
// @Failure      400  {string} string "Invalid page"
// @Router       /api/admin/pages [put]
func (ctrl *ContentController) SavePage(c *fiber.Ctx) error {
	var input SavePageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	page, err := ctrl.ContentService.SavePage(c.UserContext(), &input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(page)
}

// DeletePage godoc
// @Summary      Delete a page
// @Tags         content
// @Produce      json
// @Param        slug path string true "Page slug"
// @Success      200  {object} map[string]string
// @Router       /api/admin/pages/{slug} [delete]
func (ctrl *ContentController) DeletePage(c *fiber.Ctx) error {
	if err := ctrl.ContentService.DeletePage(c.UserContext(), c.Params("slug")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Page deleted"})
}
