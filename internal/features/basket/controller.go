package basket

import (
	"oakcraft/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type BasketController struct {
	BasketService BasketService
}

func NewBasketController(basketService BasketService) *BasketController {
	return &BasketController{
		BasketService: basketService,
	}
}

func currentUserID(c *fiber.Ctx) (string, bool) {
	claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}

// GetBasket godoc
// @Summary      Get the current user's basket
// @Tags         basket
// @Produce      json
// @Success      200  {object} BasketView
// @Router       /api/basket [get]
func (ctrl *BasketController) GetBasket(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	view, err := ctrl.BasketService.GetBasket(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(view)
}

// AddItem godoc
// @Summary      Add a configured product to the basket
// @Description  The configuration is re-priced server side before it is stored
// @Tags         basket
// @Accept       json
// @Produce      json
// @Param        input body AddItemInput true "Item"
// @Success      200  {object} BasketView
// @Failure      400  {string} string "Invalid configuration"
// @Router       /api/basket/items [post]
func (ctrl *BasketController) AddItem(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var input AddItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	view, err := ctrl.BasketService.AddItem(c.UserContext(), userID, &input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(view)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity godoc
// @Summary      Change an item's quantity
// @Description  A quantity of zero removes the item
// @Tags         basket
// @Accept       json
// @Produce      json
// @Param        itemId path string          true "Item ID"
// @Param        input  body quantityRequest true "New quantity"
// @Success      200  {object} BasketView
// @Router       /api/basket/items/{itemId} [put]
func (ctrl *BasketController) UpdateQuantity(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	view, err := ctrl.BasketService.UpdateQuantity(c.UserContext(), userID, c.Params("itemId"), req.Quantity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(view)
}

// RemoveItem godoc
// @Summary      Remove an item from the basket
// @Tags         basket
// @Produce      json
// @Param        itemId path string true "Item ID"
// @Success      200  {object} BasketView
// @Router       /api/basket/items/{itemId} [delete]
func (ctrl *BasketController) RemoveItem(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	view, err := ctrl.BasketService.RemoveItem(c.UserContext(), userID, c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(view)
}

// ClearBasket godoc
// @Summary      Empty the basket
// @Tags         basket
// @Produce      json
// @Success      200  {object} map[string]string
// @Router       /api/basket [delete]
func (ctrl *BasketController) ClearBasket(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := ctrl.BasketService.Clear(c.UserContext(), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Basket cleared"})
}
