package repository

import (
	"restaurant-orders/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatsRepository interface {
	RevenueByProduct() ([]ProductRevenue, error)
}

// ProductRevenue is quantity * captured price summed over every order line of a product
type ProductRevenue struct {
	ProductName  string          `json:"product_name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type statsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepository {
	return &statsRepo{db}
}

// RevenueByProduct ignores order status: every line ever recorded counts.
// Lines are summed in Go with decimal arithmetic; SQLite would multiply prices as REAL.
func (r *statsRepo) RevenueByProduct() ([]ProductRevenue, error) {
	rows, err := r.db.Model(&model.OrderDetail{}).
		Select("products.name, order_details.quantity, prices.price").
		Joins("JOIN products ON products.id = order_details.product_id").
		Joins("JOIN prices ON prices.id = order_details.price_id").
		Order("products.name ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ProductRevenue
	for rows.Next() {
		var (
			name     string
			quantity int64
			price    decimal.Decimal
		)
		if err := rows.Scan(&name, &quantity, &price); err != nil {
			return nil, err
		}

		line := price.Mul(decimal.NewFromInt(quantity))
		// rows are ordered by name, so a product's lines are contiguous
		if n := len(results); n > 0 && results[n-1].ProductName == name {
			results[n-1].TotalRevenue = results[n-1].TotalRevenue.Add(line)
			continue
		}
		results = append(results, ProductRevenue{ProductName: name, TotalRevenue: line})
	}

	return results, rows.Err()
}
