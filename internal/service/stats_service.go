package service

import (
	"restaurant-orders/internal/repository"

	"github.com/shopspring/decimal"
)

type StatsService interface {
	SalesByProduct() (map[string]decimal.Decimal, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

// SalesByProduct maps product name to revenue across all orders, whatever their status
func (s *statsService) SalesByProduct() (map[string]decimal.Decimal, error) {
	rows, err := s.statsRepo.RevenueByProduct()
	if err != nil {
		return nil, err
	}

	result := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		result[r.ProductName] = r.TotalRevenue
	}
	return result, nil
}
