package dashboard

import (
	"context"

	"oakcraft/internal/features/order"

	"github.com/shopspring/decimal"
)

type Summary struct {
	OrderCounts       map[string]int64  `json:"order_counts"`
	RevenueByCategory map[string]string `json:"revenue_by_category"`
	TotalRevenue      string            `json:"total_revenue"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*Summary, error)
}

type DashboardServiceImpl struct {
	OrderRepo order.OrderRepository
}

func NewDashboardService(orderRepo order.OrderRepository) DashboardService {
	return &DashboardServiceImpl{
		OrderRepo: orderRepo,
	}
}

func (s *DashboardServiceImpl) Summary(ctx context.Context) (*Summary, error) {
	counts, err := s.OrderRepo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.OrderRepo.RevenueByCategory(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	byCategory := make(map[string]string, len(revenue))
	for category, amount := range revenue {
		d := decimal.NewFromFloat(amount).Round(2)
		byCategory[category] = d.StringFixed(2)
		total = total.Add(d)
	}

	return &Summary{
		OrderCounts:       counts,
		RevenueByCategory: byCategory,
		TotalRevenue:      total.StringFixed(2),
	}, nil
}
