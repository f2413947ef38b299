package ai

import (
	"github.com/carebridge/carebridge-backend/models"
)

// MoodFromSentiment maps the provider's three-way sentiment label onto the
// app's mood vocabulary: positive→happy, negative→sad, everything else
// (including labels the provider invents) →neutral.
func MoodFromSentiment(s Sentiment) models.Mood {
	switch s {
	case SentimentPositive:
		return models.MoodHappy
	case SentimentNegative:
		return models.MoodSad
	default:
		return models.MoodNeutral
	}
}
