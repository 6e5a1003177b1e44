package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

type productSeed struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

var products = []productSeed{
	{Name: "Margherita", Category: "Pizze", Price: 7.5},
	{Name: "Peperoni", Category: "Pizze", Price: 8.0},
	{Name: "Carbonara", Category: "Pasta", Price: 9.0},
	{Name: "Tiramisu", Category: "Dolci", Price: 5.0},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	defaultURL := os.Getenv("SEED_BASE_URL")
	if defaultURL == "" {
		defaultURL = "http://127.0.0.1:3000"
	}
	baseURL := flag.String("url", defaultURL, "service base URL")
	token := flag.String("token", os.Getenv("SEED_TOKEN"), "bearer token when AUTH_REQUIRED is on")
	flag.Parse()

	c := &client{baseURL: strings.TrimRight(*baseURL, "/"), token: *token}

	for _, p := range products {
		c.post("/products", p)
	}

	c.post("/customers", fiber.Map{
		"name":  "Mario Rossi",
		"email": "mario.rossi@example.com",
	})

	c.post("/orders", fiber.Map{
		"customer_id": 1,
		"table_id":    1,
		"details": []fiber.Map{
			{"product_id": 1, "quantity": 2},
			{"product_id": 2, "quantity": 1},
		},
	})
}

type client struct {
	baseURL string
	token   string
}

// post sends body as JSON and prints the response
func (c *client) post(path string, body interface{}) {
	agent := fiber.Post(c.baseURL + path)
	agent.JSON(body)
	if c.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}

	status, resp, errs := agent.Bytes()
	if len(errs) > 0 {
		log.Fatalf("POST %s failed: %v", path, errs)
	}
	log.Printf("POST %s -> %d %s", path, status, resp)
}
