package models

import (
	"gorm.io/gorm"
)

// Medication is a prescription entry on a patient's schedule. IsTaken is
// toggled from the app and reset externally; everything else is set at
// prescription time.
type Medication struct {
	gorm.Model
	PatientID uint           `json:"patient_id"`
	Patient   PatientProfile `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	Name      string         `json:"name"`
	Dosage    string         `json:"dosage"`
	Frequency string         `json:"frequency"`   // e.g., "Once daily"
	TimeOfDay string         `json:"time_of_day"` // e.g., "Morning"
	IsTaken   bool           `json:"is_taken" gorm:"default:false"`
	Notes     string         `json:"notes,omitempty"`
	ColorHex  string         `json:"color_hex" gorm:"default:#C6E2B5"`
}
