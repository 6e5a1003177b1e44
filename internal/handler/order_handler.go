package handler

import (
	"restaurant-orders/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// CreateOrder
// POST /orders
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	order, err := h.service.CreateOrder(&req, actor(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Order created successfully",
		"order_id": order.ID,
	})
}

// UpdateOrderStatus
// PUT /orders/:id
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid order ID"})
	}

	var req service.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	if err := h.service.UpdateStatus(id, &req, actor(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Order updated successfully"})
}

// GetOrders lists in-progress orders with their line items
// GET /orders
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListInProgress()
	if err != nil {
		return err
	}
	return c.JSON(orders)
}
