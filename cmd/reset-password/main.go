package main

import (
	"flag"
	"log"

	"restaurant-orders/internal/repository"
	"restaurant-orders/internal/service"
	"restaurant-orders/pkg/config"
	"restaurant-orders/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	email := flag.String("email", cfg.AdminEmail, "staff email")
	password := flag.String("password", cfg.AdminPassword, "new password")
	flag.Parse()

	// 2. Setup Database
	db := database.ConnectDB(cfg)

	// 3. Reset
	auth := service.NewAuthService(repository.NewStaffRepo(db))
	if err := auth.ResetPassword(*email, *password); err != nil {
		log.Fatalf("❌ Failed to reset password for %s: %v", *email, err)
	}

	log.Printf("✅ Success! Password for %s has been reset", *email)
}
