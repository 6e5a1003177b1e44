package service

import (
	"restaurant-orders/internal/model"
	"restaurant-orders/internal/repository"

	"gorm.io/gorm"
)

type OrderService interface {
	CreateOrder(req *CreateOrderRequest, actor string) (*model.Order, error)
	UpdateStatus(id uint, req *UpdateStatusRequest, actor string) error
	ListInProgress() ([]model.OrderResponse, error)
}

type CreateOrderRequest struct {
	CustomerID uint               `json:"customer_id" validate:"required"`
	TableID    uint               `json:"table_id" validate:"required"`
	Details    []OrderLineRequest `json:"details" validate:"dive"`
}

type OrderLineRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
	events      EventPublisher
}

func NewOrderService(oRepo repository.OrderRepository, pRepo repository.ProductRepository, db *gorm.DB, events EventPublisher) OrderService {
	if events == nil {
		events = nopPublisher{}
	}
	return &orderService{
		orderRepo:   oRepo,
		productRepo: pRepo,
		db:          db,
		events:      events,
	}
}

// CreateOrder prices every line at the product's current price. Any missing
// product or price rolls the whole order back.
func (s *orderService) CreateOrder(req *CreateOrderRequest, actor string) (*model.Order, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	order := &model.Order{
		CustomerID: req.CustomerID,
		TableID:    req.TableID,
		Status:     model.StatusInProgress,
	}
	order.CreatedBy = actor

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range req.Details {
			if _, err := s.productRepo.FindByID(tx, line.ProductID); err != nil {
				return notFound(err, ErrProductNotFound, line.ProductID)
			}
			price, err := s.productRepo.CurrentPrice(tx, line.ProductID)
			if err != nil {
				return notFound(err, ErrPriceNotFound, line.ProductID)
			}

			detail := model.OrderDetail{
				ProductID: line.ProductID,
				PriceID:   price.ID,
				Quantity:  line.Quantity,
			}
			detail.CreatedBy = actor
			order.Details = append(order.Details, detail)
		}

		return s.orderRepo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(OrderEvent{
		Type:    EventOrderCreated,
		OrderID: order.ID,
		TableID: order.TableID,
		Status:  order.Status,
		Lines:   len(order.Details),
		Actor:   actor,
	})

	return order, nil
}

func (s *orderService) UpdateStatus(id uint, req *UpdateStatusRequest, actor string) error {
	if err := validate(req); err != nil {
		return err
	}

	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return notFound(err, ErrOrderNotFound, id)
	}

	if err := s.orderRepo.UpdateStatus(order.ID, req.Status, actor); err != nil {
		return err
	}

	s.events.Publish(OrderEvent{
		Type:    EventOrderStatusUpdated,
		OrderID: order.ID,
		TableID: order.TableID,
		Status:  req.Status,
		Actor:   actor,
	})
	return nil
}

func (s *orderService) ListInProgress() ([]model.OrderResponse, error) {
	orders, err := s.orderRepo.FindByStatus(model.StatusInProgress)
	if err != nil {
		return nil, err
	}

	result := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, orders[i].ToResponse())
	}
	return result, nil
}
