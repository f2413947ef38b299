package db

import (
	"fmt"
	"log"

	"github.com/carebridge/carebridge-backend/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.PatientProfile{},
		&models.VitalSign{},
		&models.Medication{},
		&models.HealthAlert{},
		&models.CallLog{},
		&models.ChatMessage{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
