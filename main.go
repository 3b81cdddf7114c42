package main

import (
	"cafeteria_manager/config"
	"cafeteria_manager/database"
	"cafeteria_manager/handler"
	"cafeteria_manager/helper"
	"cafeteria_manager/router"
	"cafeteria_manager/service"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	hub := service.NewHub()
	mailer := service.NewMailer()
	orders := service.NewOrderService(database.DB, hub, service.NewStripeGateway(), mailer)
	handler.Init(hub, orders, mailer, service.NewAnalyticsService(database.DB))

	helper.StartPromotionScheduler()
	defer helper.StopPromotionScheduler()
	helper.StartStockScheduler()
	defer helper.StopStockScheduler()

	router.SetupRoutes(app)

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}
