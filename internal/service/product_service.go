package service

import (
	"restaurant-orders/internal/model"
	"restaurant-orders/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService interface {
	CreateProduct(req *CreateProductRequest, actor string) (*model.Product, error)
	AddPrice(productID uint, req *AddPriceRequest, actor string) (*model.Price, error)
	GetAllProducts() ([]model.ProductResponse, error)
}

type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,max=255"`
	Category string          `json:"category" validate:"max=100"`
	Price    decimal.Decimal `json:"price" validate:"decimal_gte0"`
}

type AddPriceRequest struct {
	Price decimal.Decimal `json:"price" validate:"decimal_gte0"`
}

type productService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewProductService(pRepo repository.ProductRepository, db *gorm.DB) ProductService {
	return &productService{productRepo: pRepo, db: db}
}

// CreateProduct stores the product together with its first price row
func (s *productService) CreateProduct(req *CreateProductRequest, actor string) (*model.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:     req.Name,
		Category: req.Category,
	}
	product.CreatedBy = actor

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.Create(tx, product); err != nil {
			return err
		}

		price := model.Price{ProductID: product.ID, Amount: req.Price}
		price.CreatedBy = actor
		if err := s.productRepo.AddPrice(tx, &price); err != nil {
			return err
		}
		product.Prices = []model.Price{price}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// AddPrice appends a new price row, which becomes the product's current price.
// Existing order lines keep the price they were created with.
func (s *productService) AddPrice(productID uint, req *AddPriceRequest, actor string) (*model.Price, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.FindByID(nil, productID); err != nil {
		return nil, notFound(err, ErrProductNotFound, productID)
	}

	price := &model.Price{ProductID: productID, Amount: req.Price}
	price.CreatedBy = actor
	if err := s.productRepo.AddPrice(nil, price); err != nil {
		return nil, err
	}
	return price, nil
}

func (s *productService) GetAllProducts() ([]model.ProductResponse, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	result := make([]model.ProductResponse, 0, len(products))
	for _, p := range products {
		resp := model.ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
		}
		if len(p.Prices) > 0 {
			resp.PriceID = p.Prices[0].ID
			resp.CurrentPrice = p.Prices[0].Amount
		}
		result = append(result, resp)
	}
	return result, nil
}
