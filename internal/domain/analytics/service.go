package analytics

import (
	"context"
	"math"
	"time"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// periodStart maps the API period parameter ("7", "30", "90", "all")
// to a window start; zero time means all history.
func periodStart(period string, days int) (time.Time, time.Time) {
	if period == "all" {
		return time.Time{}, time.Time{}
	}
	now := time.Now()
	return now.AddDate(0, 0, -days), now.AddDate(0, 0, -2*days)
}

func periodDays(period string) int {
	switch period {
	case "7":
		return 7
	case "90":
		return 90
	default:
		return 30
	}
}

// Overview aggregates the dashboard headline figures, including growth
// against the previous period of equal length.
func (s *Service) Overview(ctx context.Context, shopkeeperID int64, period string) (*Overview, error) {
	days := periodDays(period)
	since, prevSince := periodStart(period, days)

	revenue, err := s.repo.Revenue(ctx, shopkeeperID, since, time.Time{})
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.OrderCount(ctx, shopkeeperID, since, time.Time{})
	if err != nil {
		return nil, err
	}
	products, err := s.repo.ProductCount(ctx, shopkeeperID)
	if err != nil {
		return nil, err
	}
	views, err := s.repo.ViewCount(ctx, shopkeeperID, since)
	if err != nil {
		return nil, err
	}

	out := &Overview{
		TotalRevenue:  revenue,
		TotalOrders:   orders,
		TotalProducts: products,
		TotalViews:    views,
	}
	if orders > 0 {
		out.AvgOrderValue = round2(revenue / float64(orders))
	}

	if period != "all" {
		prevRevenue, err := s.repo.Revenue(ctx, shopkeeperID, prevSince, since)
		if err != nil {
			return nil, err
		}
		prevOrders, err := s.repo.OrderCount(ctx, shopkeeperID, prevSince, since)
		if err != nil {
			return nil, err
		}
		if prevRevenue > 0 {
			out.RevenueGrowth = round2((revenue - prevRevenue) / prevRevenue * 100)
		}
		if prevOrders > 0 {
			out.OrdersGrowth = round2(float64(orders-prevOrders) / float64(prevOrders) * 100)
		}
	}

	return out, nil
}

func (s *Service) RevenueTrends(ctx context.Context, shopkeeperID int64, period string) ([]TrendPoint, error) {
	since, _ := periodStart(period, periodDays(period))
	return s.repo.RevenueTrends(ctx, shopkeeperID, since)
}

func (s *Service) TopProducts(ctx context.Context, shopkeeperID int64, period string, limit int) ([]TopProduct, error) {
	if limit <= 0 || limit > 20 {
		limit = 10
	}
	since, _ := periodStart(period, periodDays(period))
	return s.repo.TopProducts(ctx, shopkeeperID, since, limit)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
