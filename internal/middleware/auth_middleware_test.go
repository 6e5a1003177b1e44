package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"restaurant-orders/internal/model"
	"restaurant-orders/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStaffRepo struct {
	staff map[uint]*model.Staff
}

func (f *fakeStaffRepo) FindByID(id uint) (*model.Staff, error) {
	if s, ok := f.staff[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStaffRepo) FindByEmail(string) (*model.Staff, error) { return nil, gorm.ErrRecordNotFound }
func (f *fakeStaffRepo) Create(*model.Staff) error { return nil }
func (f *fakeStaffRepo) UpdatePassword(uint, string) error { return nil }
func (f *fakeStaffRepo) UpdateLogin(uint, string) error { return nil }
func (f *fakeStaffRepo) SeedAdmin(string, string) (bool, error) { return false, nil }

func newGuardedApp(repo *fakeStaffRepo, enabled bool) *fiber.App {
	app := fiber.New()
	app.Post("/orders", Optional(enabled, RequireAuth(repo)), func(c *fiber.Ctx) error {
		id, _ := c.Locals(LocalStaffID).(string)
		return c.SendString("ok:" + id)
	})
	return app
}

func post(t *testing.T, app *fiber.App, auth string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/orders", nil)
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test")
	staff := &model.Staff{BaseModel: model.BaseModel{ID: 4}, Email: "w@example.com", IsActive: true, TokenVersion: "v1"}
	repo := &fakeStaffRepo{staff: map[uint]*model.Staff{4: staff}}
	app := newGuardedApp(repo, true)

	code, _ := post(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = post(t, app, "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, code)

	token, err := jwt.GenerateToken(4, staff.Email, "Waiter", "v1")
	require.NoError(t, err)
	code, body := post(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "ok:4", body)

	staff.TokenVersion = "v2"
	code, _ = post(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	staff.TokenVersion = "v1"
	staff.IsActive = false
	code, _ = post(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	orphan, err := jwt.GenerateToken(99, "x@example.com", "X", "v1")
	require.NoError(t, err)
	code, _ = post(t, app, "Bearer "+orphan)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestOptionalDisabledPassesThrough(t *testing.T) {
	app := newGuardedApp(&fakeStaffRepo{}, false)

	code, body := post(t, app, "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "ok:", body)
}
