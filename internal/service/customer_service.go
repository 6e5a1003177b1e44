package service

import (
	"restaurant-orders/internal/model"
	"restaurant-orders/internal/repository"
)

type CustomerService interface {
	CreateCustomer(req *CreateCustomerRequest, actor string) (*model.Customer, error)
	GetAllCustomers() ([]model.Customer, error)
}

type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,max=255"`
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(cRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: cRepo}
}

// CreateCustomer stores the email as given: no format check, no uniqueness check
func (s *customerService) CreateCustomer(req *CreateCustomerRequest, actor string) (*model.Customer, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	customer := &model.Customer{Name: req.Name, Email: req.Email}
	customer.CreatedBy = actor
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetAllCustomers() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}
