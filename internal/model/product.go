package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Category string `gorm:"type:varchar(100)" json:"category"`

	// Relasi
	Prices  []Price       `json:"prices,omitempty"`
	Details []OrderDetail `json:"-"`
}

// Price is one entry of a product's append-only price history.
// The row with the highest ID is the current price.
type Price struct {
	BaseModel
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	Amount    decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`

	Details []OrderDetail `json:"-"`
}

// ProductResponse is a product flattened with its current price
type ProductResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	PriceID      uint            `json:"price_id"`
	CurrentPrice decimal.Decimal `json:"price"`
}
