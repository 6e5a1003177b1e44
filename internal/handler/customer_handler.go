package handler

import (
	"restaurant-orders/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

// POST /customers
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req service.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	customer, err := h.service.CreateCustomer(&req, actor(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Customer created successfully",
		"customer_id": customer.ID,
	})
}

// GET /customers
func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		return err
	}
	return c.JSON(customers)
}
