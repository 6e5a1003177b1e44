package service

import (
	"restaurant-orders/internal/model"
	"restaurant-orders/internal/repository"
)

type TableService interface {
	CreateTable(req *CreateTableRequest, actor string) (*model.Table, error)
	GetAllTables() ([]model.Table, error)
}

type CreateTableRequest struct {
	TableNumber int `json:"table_number" validate:"gt=0"`
}

type tableService struct {
	tableRepo repository.TableRepository
}

func NewTableService(tRepo repository.TableRepository) TableService {
	return &tableService{tableRepo: tRepo}
}

func (s *tableService) CreateTable(req *CreateTableRequest, actor string) (*model.Table, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	table := &model.Table{TableNumber: req.TableNumber}
	table.CreatedBy = actor
	if err := s.tableRepo.Create(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *tableService) GetAllTables() ([]model.Table, error) {
	return s.tableRepo.FindAll()
}
