package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carebridge/carebridge-backend/controllers"
	"github.com/carebridge/carebridge-backend/middleware"
)

// SetupCommunicationRoutes configures the chat, transcription and clinical
// summary routes
func SetupCommunicationRoutes(app *fiber.App) {
	comm := app.Group("/api/communication", middleware.Protected())

	comm.Post("/chat", controllers.PostChat)
	comm.Get("/chat/:user_id", controllers.GetChatHistory)
	comm.Post("/transcribe", controllers.Transcribe)
	comm.Get("/summary/:user_id", controllers.ClinicalSummary)
}
