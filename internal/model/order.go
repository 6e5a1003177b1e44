package model

import "github.com/shopspring/decimal"

// StatusInProgress is set on every new order and is the filter for the open-orders board
const StatusInProgress = "in corso"

type Order struct {
	BaseModel
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `json:"customer,omitempty"`
	TableID    uint      `gorm:"not null;index" json:"table_id"`
	Table      *Table    `json:"table,omitempty"`
	Status     string    `gorm:"type:varchar(50);not null;index" json:"status"`

	Details []OrderDetail `json:"details,omitempty"`
}

// OrderDetail is one line item. PriceID pins the price that was current when the line was created.
type OrderDetail struct {
	BaseModel
	OrderID   uint     `gorm:"not null;index" json:"order_id"`
	Order     *Order   `json:"-"`
	ProductID uint     `gorm:"not null;index" json:"product_id"`
	Product   *Product `json:"product,omitempty"`
	PriceID   uint     `gorm:"not null;index" json:"price_id"`
	Price     *Price   `json:"price,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
}

// OrderResponse is the shape returned by the open-orders listing
type OrderResponse struct {
	OrderID    uint                  `json:"order_id"`
	CustomerID uint                  `json:"customer_id"`
	TableID    uint                  `json:"table_id"`
	Status     string                `json:"status"`
	Details    []OrderDetailResponse `json:"details"`
}

type OrderDetailResponse struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// ToResponse converts an Order with preloaded Details.Product and Details.Price
func (o *Order) ToResponse() OrderResponse {
	resp := OrderResponse{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		TableID:    o.TableID,
		Status:     o.Status,
		Details:    make([]OrderDetailResponse, 0, len(o.Details)),
	}

	for _, d := range o.Details {
		line := OrderDetailResponse{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
		}
		if d.Product != nil {
			line.ProductName = d.Product.Name
		}
		if d.Price != nil {
			line.Price = d.Price.Amount
		}
		resp.Details = append(resp.Details, line)
	}

	return resp
}
