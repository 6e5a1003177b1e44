package middleware

import (
	"strconv"
	"strings"

	"restaurant-orders/internal/repository"
	"restaurant-orders/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth
const (
	LocalStaffID    = "staff_id"
	LocalStaffEmail = "staff_email"
	LocalStaffName  = "staff_name"
)

// RequireAuth validates the bearer token against the staff table and stores the staff identity in Locals
func RequireAuth(staffRepo repository.StaffRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": jwt.ErrMissingToken.Error()})
		}

		// "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}

		staff, err := staffRepo.FindByID(claims.StaffID)
		if err != nil || !staff.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Staff account not found or disabled"})
		}
		if staff.TokenVersion != claims.TokenVersion {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Session expired (logged in on another device)"})
		}

		c.Locals(LocalStaffID, strconv.FormatUint(uint64(staff.ID), 10))
		c.Locals(LocalStaffEmail, staff.Email)
		c.Locals(LocalStaffName, staff.FullName)

		return c.Next()
	}
}

// Optional returns guard when enabled, otherwise a pass-through handler
func Optional(enabled bool, guard fiber.Handler) fiber.Handler {
	if enabled {
		return guard
	}
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
