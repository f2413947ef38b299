package ai

import (
	"testing"

	"github.com/carebridge/carebridge-backend/models"
)

func TestMoodFromSentiment(t *testing.T) {
	tests := []struct {
		sentiment Sentiment
		want      models.Mood
	}{
		{SentimentPositive, models.MoodHappy},
		{SentimentNegative, models.MoodSad},
		{SentimentNeutral, models.MoodNeutral},
		{Sentiment("mixed"), models.MoodNeutral},
		{Sentiment(""), models.MoodNeutral},
	}

	for _, tt := range tests {
		if got := MoodFromSentiment(tt.sentiment); got != tt.want {
			t.Errorf("MoodFromSentiment(%q) = %q, want %q", tt.sentiment, got, tt.want)
		}
	}
}

func TestFallbackReplyIsNonEmpty(t *testing.T) {
	if FallbackReply == "" {
		t.Fatal("fallback reply must never be empty")
	}
}
