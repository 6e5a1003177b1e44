package handler

import (
	"errors"
	"strconv"

	"restaurant-orders/internal/middleware"
	"restaurant-orders/internal/model"
	"restaurant-orders/internal/service"

	"github.com/gofiber/fiber/v2"
)

// actor is the staff id set by the auth middleware, or "system" when auth is off
func actor(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalStaffID).(string); ok && id != "" {
		return id
	}
	return model.SystemActor
}

// parseID reads a positive integer path parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func badJSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON"})
}

// respondError renders known service errors; anything else goes to the app ErrorHandler
func respondError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrPriceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": vErr.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrStaffInactive):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	}
	return err
}

// ErrorHandler renders unhandled errors as {message} with the fiber status or 500
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}
