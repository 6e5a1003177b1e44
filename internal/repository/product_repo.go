package repository

import (
	"restaurant-orders/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(tx *gorm.DB, product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(tx *gorm.DB, id uint) (*model.Product, error)
	AddPrice(tx *gorm.DB, price *model.Price) error
	CurrentPrice(tx *gorm.DB, productID uint) (*model.Price, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// conn picks the transaction handle when one is given
func (r *productRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *productRepo) Create(tx *gorm.DB, product *model.Product) error {
	return r.conn(tx).Create(product).Error
}

// FindAll preloads only the newest price of each product
func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.
		Preload("Prices", "id IN (?)", r.db.Model(&model.Price{}).Select("MAX(id)").Group("product_id")).
		Order("id ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(tx *gorm.DB, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.conn(tx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) AddPrice(tx *gorm.DB, price *model.Price) error {
	return r.conn(tx).Create(price).Error
}

// CurrentPrice returns the most recently inserted price row for the product
func (r *productRepo) CurrentPrice(tx *gorm.DB, productID uint) (*model.Price, error) {
	var price model.Price
	err := r.conn(tx).
		Where("product_id = ?", productID).
		Order("id DESC").
		First(&price).Error
	if err != nil {
		return nil, err
	}
	return &price, nil
}
