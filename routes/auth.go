package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carebridge/carebridge-backend/controllers"
	"github.com/carebridge/carebridge-backend/middleware"
)

// SetupUserRoutes configures registration, login and preference routes
func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/api/users")

	// Public routes
	users.Post("/register", controllers.Register)
	users.Post("/login", controllers.Login)
	users.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	users.Get("/profile", middleware.Protected(), controllers.GetUserProfile)
	users.Get("/settings", middleware.Protected(), controllers.GetSettings)
	users.Post("/settings/update", middleware.Protected(), controllers.UpdateSettings)
	users.Post("/logout", middleware.Protected(), controllers.Logout)
}
