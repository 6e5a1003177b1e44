package router

import (
	"restaurant-orders/internal/handler"
	"restaurant-orders/internal/middleware"
	"restaurant-orders/internal/repository"
	"restaurant-orders/internal/service"
	"restaurant-orders/internal/ws"
	"restaurant-orders/pkg/config"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers and returns the Fiber app.
// hub may be nil, in which case order events are discarded and /ws is not mounted.
func New(cfg config.Config, db *gorm.DB, hub *ws.Hub) *fiber.App {
	// Repositories
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	tableRepo := repository.NewTableRepo(db)
	statsRepo := repository.NewStatsRepo(db)
	staffRepo := repository.NewStaffRepo(db)

	// Services
	var events service.EventPublisher
	if hub != nil {
		events = hub
	}
	orderService := service.NewOrderService(orderRepo, productRepo, db, events)
	productService := service.NewProductService(productRepo, db)
	customerService := service.NewCustomerService(customerRepo)
	tableService := service.NewTableService(tableRepo)
	statsService := service.NewStatsService(statsRepo)
	authService := service.NewAuthService(staffRepo)

	// Handlers
	h := routes{
		orders:    handler.NewOrderHandler(orderService),
		products:  handler.NewProductHandler(productService),
		customers: handler.NewCustomerHandler(customerService),
		tables:    handler.NewTableHandler(tableService),
		stats:     handler.NewStatsHandler(statsService, db),
		auth:      handler.NewAuthHandler(authService),
		write:     middleware.Optional(cfg.AuthRequired, middleware.RequireAuth(staffRepo)),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: handler.ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	h.register(app)
	h.register(app.Group("/api/v1"))

	if hub != nil {
		mountWebSocket(app, hub)
	}

	return app
}

type routes struct {
	orders    *handler.OrderHandler
	products  *handler.ProductHandler
	customers *handler.CustomerHandler
	tables    *handler.TableHandler
	stats     *handler.StatsHandler
	auth      *handler.AuthHandler
	write     fiber.Handler
}

func (h routes) register(r fiber.Router) {
	r.Get("/health", h.stats.Health)
	r.Post("/auth/login", h.auth.Login)

	// Orders
	r.Post("/orders", h.write, h.orders.CreateOrder)
	r.Put("/orders/:id", h.write, h.orders.UpdateOrderStatus)
	r.Get("/orders", h.orders.GetOrders)

	// Menu
	r.Post("/products", h.write, h.products.CreateProduct)
	r.Post("/products/:id/prices", h.write, h.products.AddPrice)
	r.Get("/products", h.products.GetProducts)

	// Customers & dining room
	r.Post("/customers", h.write, h.customers.CreateCustomer)
	r.Get("/customers", h.customers.GetCustomers)
	r.Post("/tables", h.write, h.tables.CreateTable)
	r.Get("/tables", h.tables.GetTables)

	r.Get("/stats", h.stats.GetStats)
}

// mountWebSocket exposes the kitchen display feed at /ws
func mountWebSocket(app *fiber.App, hub *ws.Hub) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		select {
		case hub.Register <- c:
		case <-hub.Done():
			return
		}
		defer hub.Leave(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
