package main

import (
	"context"
	"log"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/config"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/database"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/repository"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/routes"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/services"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	utils.TokenTTL = cfg.JWTTTL

	// 2. Connect to Database
	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	ctx := context.Background()
	if err := database.ConnectDB(ctx, cfg.DBUrl); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	// 3. Seed the bootstrap admin
	if cfg.SeedAdmin() {
		accounts := services.NewAccountService(repository.NewUserRepository(database.DB))
		created, err := accounts.EnsureAdmin(ctx, cfg.DefaultAdminName, cfg.DefaultAdminEmail, cfg.DefaultAdminPassword)
		if err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}
		if created {
			log.Printf("Seeded admin account %s", cfg.DefaultAdminEmail)
		}
	}

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		BodyLimit: 6 * 1024 * 1024,
	})

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	if err := routes.RegisterRoutes(app, cfg, database.DB); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// 5. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
