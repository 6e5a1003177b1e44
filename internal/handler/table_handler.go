package handler

import (
	"restaurant-orders/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TableHandler struct {
	service service.TableService
}

func NewTableHandler(s service.TableService) *TableHandler {
	return &TableHandler{service: s}
}

// POST /tables
func (h *TableHandler) CreateTable(c *fiber.Ctx) error {
	var req service.CreateTableRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}

	table, err := h.service.CreateTable(&req, actor(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Table created successfully",
		"table_id": table.ID,
	})
}

// GET /tables
func (h *TableHandler) GetTables(c *fiber.Ctx) error {
	tables, err := h.service.GetAllTables()
	if err != nil {
		return err
	}
	return c.JSON(tables)
}
