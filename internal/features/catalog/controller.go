package catalog

import (
	"github.com/gofiber/fiber/v2"
)

type CatalogController struct {
	CatalogService CatalogService
}

func NewCatalogController(catalogService CatalogService) *CatalogController {
	return &CatalogController{
		CatalogService: catalogService,
	}
}

// ListCategories godoc
// @Summary      List product categories
// @Description  List every configurable product category with its option definitions
// @Tags         catalog
// @Produce      json
// @Success      200  {array} Category
// @Failure      500  {string} string "Failed to list categories"
// @Router       /api/catalog [get]
func (ctrl *CatalogController) ListCategories(c *fiber.Ctx) error {
	categories, err := ctrl.CatalogService.ListCategories(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(categories)
}

// GetCategory godoc
// @Summary      Get a product category
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200  {object} Category
// @Failure      404  {string} string "Category not found"
// @Router       /api/catalog/{id} [get]
func (ctrl *CatalogController) GetCategory(c *fiber.Ctx) error {
	category, err := ctrl.CatalogService.GetCategory(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	return c.JSON(category)
}

// UpdateCategory godoc
// @Summary      Update a product category's option table
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID"
// @Param        category body Category true "Category"
// @Success      200  {object} map[string]string
// @Failure      400  {string} string "Invalid category"
// @Router       /api/admin/catalog/{id} [put]
func (ctrl *CatalogController) UpdateCategory(c *fiber.Ctx) error {
	var category Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.CatalogService.UpdateCategory(c.UserContext(), c.Params("id"), &category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Category updated successfully",
	})
}
