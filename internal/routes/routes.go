package routes

import (
	"context"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/config"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/database"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/handlers"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/middleware"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/repository"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db repository.DBTX) error {
	userRepo := repository.NewUserRepository(db)
	var storageService services.StorageService
	if cfg.StorageEnabled() {
		storageService = services.NewSupabaseStorageService(cfg.SupabaseURL, cfg.SupabaseBucket, cfg.SupabaseServiceKey)
	}

	userHandler := handlers.NewUserHandler(userRepo, storageService)
	if cfg.PrivatePhotos {
		userHandler.SignPhotoURLs()
	}
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authRequired := middleware.AuthRequired(cfg.JWTSecret)

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		if !database.Healthy(context.Background()) {
			status = "degraded"
		}
		return c.JSON(fiber.Map{"status": status})
	})

	app.Post("/usuarios", userHandler.Create)
	app.Get("/usuarios", authRequired, middleware.AdminOnly(), userHandler.List)
	app.Get("/usuarios/:id", authRequired, userHandler.Get)
	app.Delete("/usuarios/:id", authRequired, userHandler.Delete)
	app.Post("/usuarios/:id/foto", authRequired, userHandler.UploadPhoto)

	app.Post("/logar", authHandler.Login)
	app.Get("/me", authRequired, authHandler.Me)

	return registerDocsRoutes(app, cfg)
}
