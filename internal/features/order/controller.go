package order

import (
	"strconv"

	"oakcraft/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	OrderService OrderService
}

func NewOrderController(orderService OrderService) *OrderController {
	return &OrderController{
		OrderService: orderService,
	}
}

func currentUserID(c *fiber.Ctx) (string, bool) {
	claims, ok := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return "", false
	}
	return claims.UserID, true
}

// Checkout godoc
// @Summary      Convert the basket to an order and start payment
// @Tags         orders
// @Produce      json
// @Success      201  {object} CheckoutResult
// @Failure      400  {string} string "Basket empty or price changed"
// @Router       /api/orders/checkout [post]
func (ctrl *OrderController) Checkout(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	result, err := ctrl.OrderService.Checkout(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ConfirmPayment godoc
// @Summary      Re-check payment status with the provider
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200  {object} Order
// @Failure      400  {string} string "No payment reference"
// @Router       /api/orders/{id}/confirm [post]
func (ctrl *OrderController) ConfirmPayment(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	order, err := ctrl.OrderService.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	if order.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	updated, err := ctrl.OrderService.ConfirmPayment(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(updated)
}

// ListMyOrders godoc
// @Summary      List the current user's orders
// @Tags         orders
// @Produce      json
// @Success      200  {array} Order
// @Router       /api/orders [get]
func (ctrl *OrderController) ListMyOrders(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	orders, err := ctrl.OrderService.ListUserOrders(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(orders)
}

// GetMyOrder godoc
// @Summary      Get one of the current user's orders
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200  {object} Order
// @Failure      404  {string} string "Order not found"
// @Router       /api/orders/{id} [get]
func (ctrl *OrderController) GetMyOrder(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	order, err := ctrl.OrderService.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil || order.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	return c.JSON(order)
}

// ListOrders godoc
// @Summary      List all orders (back office)
// @Tags         orders
// @Produce      json
// @Param        status query string false "Filter by status"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Offset"
// @Success      200  {array} Order
// @Router       /api/admin/orders [get]
func (ctrl *OrderController) ListOrders(c *fiber.Ctx) error {
	limit, _ := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.Query("offset", "0"), 10, 64)

	orders, err := ctrl.OrderService.ListOrders(c.UserContext(), OrderStatus(c.Query("status")), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(orders)
}

// GetOrder godoc
// @Summary      Get any order (back office)
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200  {object} Order
// @Failure      404  {string} string "Order not found"
// @Router       /api/admin/orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *fiber.Ctx) error {
	order, err := ctrl.OrderService.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	return c.JSON(order)
}

type statusRequest struct {
	Status OrderStatus `json:"status"`
}

// UpdateStatus godoc
// @Summary      Move an order to a new status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path string        true "Order ID"
// @Param        input body statusRequest true "New status"
// @Success      200  {object} map[string]string
// @Failure      400  {string} string "Invalid transition"
// @Router       /api/admin/orders/{id}/status [put]
func (ctrl *OrderController) UpdateStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.OrderService.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Order status updated"})
}

// ApproveOrder godoc
// @Summary      Approve a paid order for production
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200  {object} map[string]string
// @Failure      400  {string} string "Invalid transition"
// @Router       /api/admin/orders/{id}/approve [post]
func (ctrl *OrderController) ApproveOrder(c *fiber.Ctx) error {
	if err := ctrl.OrderService.UpdateStatus(c.UserContext(), c.Params("id"), StatusApproved); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Order approved"})
}
