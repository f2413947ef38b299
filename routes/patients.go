package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carebridge/carebridge-backend/controllers"
	"github.com/carebridge/carebridge-backend/middleware"
)

// SetupPatientRoutes configures the patient profile, vitals, medication,
// alert and call-log CRUD routes
func SetupPatientRoutes(app *fiber.App) {
	patients := app.Group("/api/patients", middleware.Protected())

	patients.Get("/", controllers.GetAllPatients)
	patients.Post("/", controllers.CreatePatient)
	patients.Get("/:id", controllers.GetPatient)
	patients.Patch("/:id", controllers.UpdatePatient)

	patients.Get("/:id/vitals", controllers.GetVitals)
	patients.Post("/:id/vitals", controllers.CreateVital)

	patients.Get("/:id/medications", controllers.GetMedications)
	patients.Post("/:id/medications", controllers.CreateMedication)

	patients.Get("/:id/alerts", controllers.GetAlerts)
	patients.Post("/:id/alerts", controllers.CreateAlert)

	patients.Get("/:id/calls", controllers.GetCallLogs)
	patients.Post("/:id/calls", controllers.CreateCallLog)

	doctors := app.Group("/api/doctors", middleware.Protected())
	doctors.Get("/:id/calls", controllers.GetDoctorCallLogs)

	// Single-record mutations addressed by their own IDs
	meds := app.Group("/api/medications", middleware.Protected())
	meds.Patch("/:id/toggle", controllers.ToggleMedication)
	meds.Delete("/:id", controllers.DeleteMedication)

	alerts := app.Group("/api/alerts", middleware.Protected())
	alerts.Patch("/:id/read", controllers.MarkAlertRead)
}
