package order

import (
	"context"
	"fmt"

	common_models "oakcraft/internal/common/models"
	"oakcraft/internal/features/audit"
	"oakcraft/internal/features/basket"
	"oakcraft/internal/features/pricing"
	"oakcraft/internal/features/system"
	"oakcraft/internal/payment"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CheckoutResult struct {
	Order       *Order `json:"order"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

type OrderService interface {
	// Checkout converts the user's basket into a pending order and opens a
	// payment intent with the provider. Every line is re-priced first.
	Checkout(ctx context.Context, userID string) (*CheckoutResult, error)
	// ConfirmPayment re-queries the provider and settles the order status.
	ConfirmPayment(ctx context.Context, orderID string) (*Order, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]Order, error)
	ListOrders(ctx context.Context, status OrderStatus, limit, offset int64) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
}

type OrderServiceImpl struct {
	OrderRepo      OrderRepository
	BasketService  basket.BasketService
	PricingService pricing.PricingService
	PaymentClient  payment.Client
	AuditService   audit.AuditService
	Hub            *system.Hub
	Logger         *zap.Logger
}

func NewOrderService(
	orderRepo OrderRepository,
	basketService basket.BasketService,
	pricingService pricing.PricingService,
	paymentClient payment.Client,
	auditService audit.AuditService,
	hub *system.Hub,
	logger *zap.Logger,
) OrderService {
	return &OrderServiceImpl{
		OrderRepo:      orderRepo,
		BasketService:  basketService,
		PricingService: pricingService,
		PaymentClient:  paymentClient,
		AuditService:   auditService,
		Hub:            hub,
		Logger:         logger,
	}
}

func (s *OrderServiceImpl) Checkout(ctx context.Context, userID string) (*CheckoutResult, error) {
	view, err := s.BasketService.GetBasket(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(view.Items) == 0 {
		return nil, fmt.Errorf("basket is empty")
	}

	// Re-price every line against the live tables. A rule change between
	// add-to-basket and checkout must not be silently absorbed.
	total := decimal.Zero
	items := make([]OrderItem, 0, len(view.Items))
	for _, item := range view.Items {
		quote, err := s.PricingService.QuoteEncoded(ctx, item.Category, item.EncodedState)
		if err != nil {
			return nil, fmt.Errorf("re-pricing %s: %w", item.Category, err)
		}
		if !quote.Configurable {
			return nil, fmt.Errorf("item %q is no longer available to order", item.Description)
		}

		price, err := decimal.NewFromString(quote.Price)
		if err != nil {
			return nil, err
		}
		if !price.Equal(decimal.NewFromFloat(item.UnitPrice).Round(2)) {
			return nil, fmt.Errorf("the price of %q has changed, please review your basket", item.Description)
		}

		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, OrderItem{
			Category:     item.Category,
			EncodedState: item.EncodedState,
			Description:  quote.Description,
			UnitPrice:    price.InexactFloat64(),
			Quantity:     item.Quantity,
		})
	}

	order := &Order{
		UserID:   userID,
		Items:    items,
		Total:    total.InexactFloat64(),
		Currency: "GBP",
		Status:   StatusPending,
	}

	if err := s.OrderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	intent, err := s.PaymentClient.CreateIntent(order.ID.Hex(), total.StringFixed(2), order.Currency)
	if err != nil {
		// The order stays pending; payment can be retried via confirm.
		s.Logger.Error("payment intent failed", zap.String("order_id", order.ID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("could not start payment: %w", err)
	}

	if err := s.OrderRepo.SetPaymentRef(ctx, order.ID.Hex(), intent.Reference); err != nil {
		return nil, err
	}
	order.PaymentRef = intent.Reference

	if err := s.BasketService.Clear(ctx, userID); err != nil {
		s.Logger.Warn("could not clear basket after checkout", zap.String("user_id", userID), zap.Error(err))
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCheckout, "orders", order.ID.Hex(), map[string]common_models.Change{
		"total": {New: total.StringFixed(2)},
	})
	s.Hub.Broadcast("order", orderEvent(order))

	s.Logger.Info("checkout completed",
		zap.String("order_id", order.ID.Hex()),
		zap.String("total", total.StringFixed(2)),
		zap.Int("items", len(items)))

	return &CheckoutResult{Order: order, RedirectURL: intent.RedirectURL}, nil
}

func (s *OrderServiceImpl) ConfirmPayment(ctx context.Context, orderID string) (*Order, error) {
	order, err := s.OrderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order not found")
	}
	if order.Status != StatusPending {
		return order, nil
	}
	if order.PaymentRef == "" {
		return nil, fmt.Errorf("order has no payment reference")
	}

	intent, err := s.PaymentClient.GetIntent(order.PaymentRef)
	if err != nil {
		return nil, err
	}

	var status OrderStatus
	switch intent.Status {
	case "succeeded":
		status = StatusPaid
	case "failed":
		status = StatusFailed
	default:
		// Still processing at the provider
		return order, nil
	}

	if err := s.OrderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "orders", orderID, map[string]common_models.Change{
		"status": {Old: StatusPending, New: status},
	})
	s.Hub.Broadcast("order", orderEvent(order))

	return order, nil
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.OrderRepo.FindByID(ctx, id)
}

func (s *OrderServiceImpl) ListUserOrders(ctx context.Context, userID string) ([]Order, error) {
	return s.OrderRepo.ListByUser(ctx, userID)
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context, status OrderStatus, limit, offset int64) ([]Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.OrderRepo.List(ctx, status, limit, offset)
}

func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id string, status OrderStatus) error {
	order, err := s.OrderRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("order not found")
	}
	if !canTransition(order.Status, status) {
		return fmt.Errorf("cannot move order from %s to %s", order.Status, status)
	}

	if err := s.OrderRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, "orders", id, map[string]common_models.Change{
		"status": {Old: order.Status, New: status},
	})

	order.Status = status
	s.Hub.Broadcast("order", orderEvent(order))
	return nil
}

func orderEvent(order *Order) map[string]interface{} {
	return map[string]interface{}{
		"id":     order.ID.Hex(),
		"status": order.Status,
		"total":  order.Total,
	}
}
