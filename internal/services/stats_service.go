package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/viettrungIT3/inventory-admin/internal/inventory"
	"github.com/viettrungIT3/inventory-admin/internal/models"
)

// DashboardStats aggregates the numbers shown on the dashboard's stat cards.
type DashboardStats struct {
	TotalProducts  int64
	TotalCustomers int64
	TotalOrders    int64
	StockOnHand    int64
}

// StatsServiceProvider defines the interface for dashboard statistics.
type StatsServiceProvider interface {
	GetDashboardStats(ctx context.Context, token string) DashboardStats
	GetRecentOrders(ctx context.Context, token string, limit int) []models.Order
}

// StatsService computes dashboard statistics from live backend data.
type StatsService struct {
	api inventory.ResourceProvider
}

// NewStatsService creates a new StatsService.
func NewStatsService(api inventory.ResourceProvider) *StatsService {
	return &StatsService{api: api}
}

// statsSampleSize bounds the product page used for the stock-on-hand sum.
const statsSampleSize = 200

// GetDashboardStats collects the stat card values. A failed backend call
// leaves the affected card at zero rather than failing the whole page.
func (s *StatsService) GetDashboardStats(ctx context.Context, token string) DashboardStats {
	var stats DashboardStats

	if page, err := s.api.ListProducts(ctx, token, 0, statsSampleSize); err != nil {
		log.Warn().Err(err).Msg("Dashboard: failed to load product stats")
	} else {
		stats.TotalProducts = page.TotalElements
		for _, p := range page.Content {
			stats.StockOnHand += p.QuantityInStock
		}
	}

	if page, err := s.api.ListCustomers(ctx, token, 0, 1); err != nil {
		log.Warn().Err(err).Msg("Dashboard: failed to load customer stats")
	} else {
		stats.TotalCustomers = page.TotalElements
	}

	if page, err := s.api.ListOrders(ctx, token, 0, 1); err != nil {
		log.Warn().Err(err).Msg("Dashboard: failed to load order stats")
	} else {
		stats.TotalOrders = page.TotalElements
	}

	return stats
}

// GetRecentOrders returns the most recent orders for the dashboard table, or
// nil when the backend is unreachable.
func (s *StatsService) GetRecentOrders(ctx context.Context, token string, limit int) []models.Order {
	page, err := s.api.ListOrders(ctx, token, 0, limit)
	if err != nil {
		log.Warn().Err(err).Msg("Dashboard: failed to load recent orders")
		return nil
	}
	return page.Content
}
