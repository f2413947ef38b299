package models

import (
	"time"

	"gorm.io/gorm"
)

type PatientStatus string

const (
	StatusStable   PatientStatus = "Stable"
	StatusHigh     PatientStatus = "High"
	StatusCritical PatientStatus = "Critical"
)

type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodNeutral Mood = "neutral"
)

// PatientProfile extends a patient User with clinical data and a snapshot of
// the latest known state (mood, status, last vitals). The snapshot fields are
// refreshed whenever new vitals or chat sentiment come in; the historical
// record lives in VitalSign.
type PatientProfile struct {
	gorm.Model
	UserID            uint    `json:"user_id" gorm:"uniqueIndex"`
	User              User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CaregiverName     string  `json:"caregiver_name"`
	Language          string  `json:"language" gorm:"default:English"`
	MedicalCondition  string  `json:"medical_condition" gorm:"default:General"`
	AssignedDoctorID  *uint   `json:"assigned_doctor_id,omitempty"`
	AssignedDoctor    *User   `json:"assigned_doctor,omitempty" gorm:"foreignKey:AssignedDoctorID;constraint:OnDelete:SET NULL"`
	SatisfactionScore float64 `json:"satisfaction_score" gorm:"default:5.0"`

	// Snapshot of current state, updated frequently.
	CurrentStatus     PatientStatus `json:"current_status" gorm:"default:Stable"`
	CurrentMood       Mood          `json:"current_mood" gorm:"default:neutral"`
	LastHeartRate     int           `json:"last_heart_rate" gorm:"default:72"`
	LastTemperature   float64       `json:"last_temperature" gorm:"default:98.6"`
	LastBloodPressure string        `json:"last_blood_pressure" gorm:"default:120/80"`

	Vitals      []VitalSign   `json:"vitals,omitempty" gorm:"foreignKey:PatientID"`
	Medications []Medication  `json:"medications,omitempty" gorm:"foreignKey:PatientID"`
	Alerts      []HealthAlert `json:"alerts,omitempty" gorm:"foreignKey:PatientID"`
}

// VitalSign is one entry in the append-only health metric log.
type VitalSign struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	PatientID     uint           `json:"patient_id"`
	Patient       PatientProfile `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	HeartRate     int            `json:"heart_rate"`
	Steps         int            `json:"steps" gorm:"default:0"`
	SleepHours    float64        `json:"sleep_hours" gorm:"default:0"`
	BloodPressure string         `json:"blood_pressure" gorm:"default:120/80"`
	Temperature   float64        `json:"temperature" gorm:"default:98.6"`
	OxygenLevel   int            `json:"oxygen_level" gorm:"default:98"`
	Timestamp     time.Time      `json:"timestamp" gorm:"autoCreateTime"`
}
