package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"restaurant-orders/internal/model"
	"restaurant-orders/internal/repository"
	"restaurant-orders/internal/router"
	"restaurant-orders/internal/ws"
	"restaurant-orders/pkg/config"
	"restaurant-orders/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database (tables are created if absent)
	db := database.ConnectDB(cfg)
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// 3. Seed dining room tables and the default staff account
	seedDefaults(db, cfg)

	// 4. Kitchen display feed
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Wire layers and routes
	app := router.New(cfg, db, wsHub)

	// 6. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	wsHub.Close()

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server exited")
}

func seedDefaults(db *gorm.DB, cfg config.Config) {
	if err := repository.NewTableRepo(db).SeedDefaults(cfg.TableCount); err != nil {
		log.Printf("Warning: Failed to seed tables: %v", err)
	}

	created, err := repository.NewStaffRepo(db).SeedAdmin(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Printf("Warning: Failed to create admin staff: %v", err)
		return
	}
	if created {
		log.Printf("✅ Admin staff created: %s", cfg.AdminEmail)
	}
	if cfg.AuthRequired {
		log.Println("Auth required for write routes")
	}
}
