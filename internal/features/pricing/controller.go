package pricing

import (
	"oakcraft/internal/features/catalog"

	"github.com/gofiber/fiber/v2"
)

type PricingController struct {
	PricingService PricingService
}

func NewPricingController(pricingService PricingService) *PricingController {
	return &PricingController{
		PricingService: pricingService,
	}
}

type QuoteRequest struct {
	Category string              `json:"category"`
	Config   catalog.ConfigState `json:"config"`
}

// GetQuote godoc
// @Summary      Price a configuration
// @Description  Compute price and description for a product configuration
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        input body QuoteRequest true "Configuration"
// @Success      200  {object} Quote
// @Failure      400  {string} string "Invalid request body"
// @Router       /api/quote [post]
func (ctrl *PricingController) GetQuote(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	quote, err := ctrl.PricingService.Quote(c.UserContext(), req.Category, req.Config)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(quote)
}

// GetQuoteFromEncoded godoc
// @Summary      Price an encoded configuration
// @Description  Re-price a configuration carried in its URL-safe encoded form
// @Tags         pricing
// @Produce      json
// @Param        category query string true "Category ID"
// @Param        state    query string true "Encoded configuration state"
// @Success      200  {object} Quote
// @Failure      400  {string} string "Malformed state"
// @Router       /api/quote/preview [get]
func (ctrl *PricingController) GetQuoteFromEncoded(c *fiber.Ctx) error {
	quote, err := ctrl.PricingService.QuoteEncoded(c.UserContext(), c.Query("category"), c.Query("state"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(quote)
}

// ListRules godoc
// @Summary      List price rules
// @Tags         pricing
// @Produce      json
// @Param        category query string false "Category ID"
// @Success      200  {array} PriceRule
// @Router       /api/admin/pricing/rules [get]
func (ctrl *PricingController) ListRules(c *fiber.Ctx) error {
	rules, err := ctrl.PricingService.ListRules(c.UserContext(), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(rules)
}

// UpsertRule godoc
// @Summary      Create or update a price rule
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        rule body PriceRule true "Price rule"
// @Success      200  {object} map[string]string
// @Failure      400  {string} string "Invalid rule"
// @Router       /api/admin/pricing/rules [put]
func (ctrl *PricingController) UpsertRule(c *fiber.Ctx) error {
	var rule PriceRule
	if err := c.BodyParser(&rule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.PricingService.UpsertRule(c.UserContext(), &rule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Price rule saved"})
}

// DeleteRule godoc
// @Summary      Delete a price rule
// @Tags         pricing
// @Produce      json
// @Param        id path string true "Rule ID"
// @Success      200  {object} map[string]string
// @Router       /api/admin/pricing/rules/{id} [delete]
func (ctrl *PricingController) DeleteRule(c *fiber.Ctx) error {
	if err := ctrl.PricingService.DeleteRule(c.UserContext(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Price rule deleted"})
}
