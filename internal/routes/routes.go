package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/shoplocal/internal/config"
	"github.com/example/shoplocal/internal/handlers"
	"github.com/example/shoplocal/internal/middleware"
	"github.com/example/shoplocal/internal/services"
)

// Register wires up all HTTP routes under /api/v1.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	notifier := services.NewNotifier(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	authHandler := handlers.NewAuthHandler(db, cfg)
	storeHandler := handlers.NewStoreHandler(db)
	productHandler := handlers.NewProductHandler(db)
	orderHandler := handlers.NewOrderHandler(db, notifier)
	profileHandler := handlers.NewProfileHandler(db)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("E-commerce API is running...")
	})

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	stores := api.Group("/stores")
	stores.Get("/nearby", storeHandler.Nearby)
	stores.Get("/", storeHandler.ListStores)
	stores.Get("/:id", storeHandler.GetStore)

	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/:id", productHandler.GetProduct)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Get("/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)
}
