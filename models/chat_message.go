package models

import (
	"time"
)

// ChatMessage is one turn of the CareAI conversation. IsUserSender is true
// for patient-authored turns and false for assistant replies. Conversation
// reconstruction depends on oldest-first timestamp ordering.
type ChatMessage struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id"`
	User         User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Content      string    `json:"content"`
	IsUserSender bool      `json:"is_user_sender"`
	Timestamp    time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}
