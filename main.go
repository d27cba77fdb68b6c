package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/healthsetu/provider-portal/api"
	"github.com/healthsetu/provider-portal/config"
	"github.com/healthsetu/provider-portal/controllers"
	"github.com/healthsetu/provider-portal/middleware"
	"github.com/healthsetu/provider-portal/redis"
	"github.com/healthsetu/provider-portal/routes"
	"github.com/healthsetu/provider-portal/session"
	"github.com/healthsetu/provider-portal/views"
)

func main() {
	cfg := config.Load()
	redis.InitRedis(cfg.RedisAddr)

	store := session.NewRedisStore(redis.Client)
	client := api.NewClient(cfg.APIBaseURL)

	middleware.Init(store)
	controllers.Init(client, store)

	app := fiber.New(fiber.Config{
		Views: views.Engine(),
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupSuperAdminRoutes(app)

	log.Fatal(app.Listen(":" + cfg.Port))
}
