package repository

import (
	"restaurant-orders/internal/model"

	"gorm.io/gorm"
)

type TableRepository interface {
	Create(table *model.Table) error
	FindAll() ([]model.Table, error)
	SeedDefaults(count int) error
}

type tableRepo struct {
	db *gorm.DB
}

func NewTableRepo(db *gorm.DB) TableRepository {
	return &tableRepo{db}
}

func (r *tableRepo) Create(table *model.Table) error {
	return r.db.Create(table).Error
}

func (r *tableRepo) FindAll() ([]model.Table, error) {
	var tables []model.Table
	err := r.db.Order("table_number ASC").Find(&tables).Error
	return tables, err
}

// SeedDefaults creates tables numbered 1..count when the dining room is empty
func (r *tableRepo) SeedDefaults(count int) error {
	var existing int64
	if err := r.db.Model(&model.Table{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 || count <= 0 {
		return nil
	}

	tables := make([]model.Table, 0, count)
	for n := 1; n <= count; n++ {
		tables = append(tables, model.Table{TableNumber: n})
	}
	return r.db.Create(&tables).Error
}
