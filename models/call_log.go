package models

import (
	"time"
)

type CallStatus string

const (
	CallCompleted CallStatus = "Completed"
	CallMissed    CallStatus = "Missed"
	CallOngoing   CallStatus = "Ongoing"
)

type CallType string

const (
	CallVideo CallType = "Video"
	CallAudio CallType = "Audio"
)

// CallLog records one doctor-patient call. Rows are immutable history; there
// are no update paths, only inserts and reads.
type CallLog struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	DoctorID  uint           `json:"doctor_id"`
	Doctor    User           `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	PatientID uint           `json:"patient_id"`
	Patient   PatientProfile `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	Duration  string         `json:"duration"` // duration string like "15:32"
	StartedAt time.Time      `json:"started_at"`
	Status    CallStatus     `json:"status"`
	CallType  CallType       `json:"call_type"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
