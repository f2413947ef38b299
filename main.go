package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/carebridge/carebridge-backend/ai"
	"github.com/carebridge/carebridge-backend/care"
	"github.com/carebridge/carebridge-backend/controllers"
	"github.com/carebridge/carebridge-backend/cron"
	"github.com/carebridge/carebridge-backend/db"
	"github.com/carebridge/carebridge-backend/redis"
	"github.com/carebridge/carebridge-backend/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	// One AI client for the process; handlers get it through the care service
	aiClient := ai.NewOpenAIClient()
	careService := care.NewService(care.NewGormStore(db.DB), aiClient)
	controllers.InitCommunication(careService)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("CareBridge API")
	})
	routes.SetupUserRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupCommunicationRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
