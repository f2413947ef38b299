package models

import (
	"time"
)

type AlertType string

const (
	AlertCritical AlertType = "Critical"
	AlertHigh     AlertType = "High"
	AlertMedium   AlertType = "Medium"
	AlertLow      AlertType = "Low"
)

// HealthAlert is a system-generated notification tied to a patient, raised
// from abnormal vitals or missed medications. Append-only apart from the
// read flag.
type HealthAlert struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	PatientID uint           `json:"patient_id"`
	Patient   PatientProfile `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	AlertType AlertType      `json:"alert_type"`
	Message   string         `json:"message"`
	IsRead    bool           `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
}
