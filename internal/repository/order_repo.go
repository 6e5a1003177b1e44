package repository

import (
	"restaurant-orders/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(tx *gorm.DB, order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindByStatus(status string) ([]model.Order, error)
	UpdateStatus(id uint, status, updatedBy string) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

// Create inserts the order and its Details in the given transaction
func (r *orderRepo) Create(tx *gorm.DB, order *model.Order) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(order).Error
}

func (r *orderRepo) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByStatus returns orders with at least one line item, each line preloaded
// with its product and the price row it was billed at.
func (r *orderRepo) FindByStatus(status string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("order_details.id ASC") }).
		Preload("Details.Product").
		Preload("Details.Price").
		Where("status = ?", status).
		Where("id IN (?)", r.db.Model(&model.OrderDetail{}).Select("order_id")).
		Order("id ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) UpdateStatus(id uint, status, updatedBy string) error {
	return r.db.Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		}).Error
}
