package basket

import (
	"context"
	"fmt"

	"oakcraft/internal/features/pricing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AddItemInput struct {
	Category     string `json:"category"`
	EncodedState string `json:"encoded_state"`
	Quantity     int    `json:"quantity"`
}

type BasketService interface {
	GetBasket(ctx context.Context, userID string) (*BasketView, error)
	// AddItem re-prices the configuration server side. Client-sent prices
	// are never stored.
	AddItem(ctx context.Context, userID string, input *AddItemInput) (*BasketView, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*BasketView, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*BasketView, error)
	Clear(ctx context.Context, userID string) error
}

type BasketServiceImpl struct {
	BasketRepo     BasketRepository
	PricingService pricing.PricingService
	Logger         *zap.Logger
}

func NewBasketService(basketRepo BasketRepository, pricingService pricing.PricingService, logger *zap.Logger) BasketService {
	return &BasketServiceImpl{
		BasketRepo:     basketRepo,
		PricingService: pricingService,
		Logger:         logger,
	}
}

// Total sums unit price times quantity over the items.
func Total(items []BasketItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

func (s *BasketServiceImpl) view(basket *Basket) *BasketView {
	return &BasketView{
		Basket: *basket,
		Total:  Total(basket.Items).StringFixed(2),
	}
}

func (s *BasketServiceImpl) GetBasket(ctx context.Context, userID string) (*BasketView, error) {
	basket, err := s.BasketRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(basket), nil
}

func (s *BasketServiceImpl) AddItem(ctx context.Context, userID string, input *AddItemInput) (*BasketView, error) {
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	quote, err := s.PricingService.QuoteEncoded(ctx, input.Category, input.EncodedState)
	if err != nil {
		return nil, err
	}
	if !quote.Configurable {
		return nil, fmt.Errorf("this configuration is not yet available to order")
	}

	price, err := decimal.NewFromString(quote.Price)
	if err != nil {
		return nil, err
	}

	item := &BasketItem{
		Category:     quote.Category,
		EncodedState: quote.EncodedState,
		Description:  quote.Description,
		UnitPrice:    price.InexactFloat64(),
		Quantity:     input.Quantity,
	}

	if err := s.BasketRepo.AddItem(ctx, userID, item); err != nil {
		return nil, err
	}

	s.Logger.Info("basket item added",
		zap.String("user_id", userID),
		zap.String("category", item.Category),
		zap.String("price", quote.Price))

	return s.GetBasket(ctx, userID)
}

func (s *BasketServiceImpl) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*BasketView, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, itemID)
	}
	if quantity > 100 {
		return nil, fmt.Errorf("quantity too large")
	}

	if err := s.BasketRepo.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.GetBasket(ctx, userID)
}

func (s *BasketServiceImpl) RemoveItem(ctx context.Context, userID, itemID string) (*BasketView, error) {
	if err := s.BasketRepo.RemoveItem(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return s.GetBasket(ctx, userID)
}

func (s *BasketServiceImpl) Clear(ctx context.Context, userID string) error {
	return s.BasketRepo.Clear(ctx, userID)
}
