package care

import (
	"gorm.io/gorm"

	"github.com/carebridge/carebridge-backend/models"
)

// GormStore is the production Store backed by the shared gorm connection.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(conn *gorm.DB) *GormStore {
	return &GormStore{DB: conn}
}

func (s *GormStore) CreateMessage(m *models.ChatMessage) error {
	return s.DB.Create(m).Error
}

func (s *GormStore) ListMessages(userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.DB.Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&msgs).Error
	return msgs, err
}

func (s *GormStore) ListPatientMessages(userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.DB.Where("user_id = ? AND is_user_sender = ?", userID, true).
		Order("timestamp ASC").
		Find(&msgs).Error
	return msgs, err
}

func (s *GormStore) SetProfileMood(userID uint, mood models.Mood) (bool, error) {
	tx := s.DB.Model(&models.PatientProfile{}).
		Where("user_id = ?", userID).
		Update("current_mood", mood)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
