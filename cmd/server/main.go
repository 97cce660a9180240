package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/shoplocal/internal/config"
	"github.com/example/shoplocal/internal/database"
	"github.com/example/shoplocal/internal/routes"
	"github.com/example/shoplocal/internal/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if cfg.SeedDemoData {
		if err := database.SeedDemoData(db); err != nil {
			log.Printf("demo data seed failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "Shoplocal Backend",
		ErrorHandler: utils.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
	}))

	routes.Register(app, db, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
