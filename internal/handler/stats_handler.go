package handler

import (
	"restaurant-orders/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StatsHandler struct {
	service service.StatsService
	db      *gorm.DB
}

func NewStatsHandler(s service.StatsService, db *gorm.DB) *StatsHandler {
	return &StatsHandler{service: s, db: db}
}

// GetStats returns product name -> total revenue
// GET /stats
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.SalesByProduct()
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Health pings the database
// GET /health
func (h *StatsHandler) Health(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "message": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
