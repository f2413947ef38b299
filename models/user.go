package models

import (
	"time"
)

type UserRole string

const (
	RolePatient UserRole = "patient"
	RoleDoctor  UserRole = "doctor"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	Email        string        `json:"email" gorm:"unique"`
	Password     string        `json:"password,omitempty"`
	Role         UserRole      `json:"role" gorm:"default:patient"`
	Phone        string        `json:"phone,omitempty"`
	DateOfBirth  *time.Time    `json:"date_of_birth,omitempty"`
	BloodGroup   string        `json:"blood_group,omitempty"`
	Age          int           `json:"age,omitempty"`
	ChatMessages []ChatMessage `json:"chat_messages,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// UserSettings holds per-user preferences. One row per user, created lazily
// the first time the settings endpoints are hit.
type UserSettings struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	UserID               uint      `json:"user_id" gorm:"uniqueIndex"`
	User                 User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	NotificationsEnabled bool      `json:"notifications_enabled" gorm:"default:true"`
	VoiceAlertsEnabled   bool      `json:"voice_alerts_enabled" gorm:"default:true"`
	DarkModeEnabled      bool      `json:"dark_mode_enabled" gorm:"default:false"`
	UpdatedAt            time.Time `json:"updated_at"`
}
