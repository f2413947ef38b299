package care

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/carebridge/carebridge-backend/ai"
	"github.com/carebridge/carebridge-backend/models"
)

type fakeAI struct {
	reply         string
	replyErr      error
	sentiment     ai.Sentiment
	sentimentErr  error
	transcript    string
	transcribeErr error

	generateCalls int
	lastUserText  string
}

func (f *fakeAI) GenerateReply(ctx context.Context, systemPrompt, userText string) (string, error) {
	f.generateCalls++
	f.lastUserText = userText
	return f.reply, f.replyErr
}

func (f *fakeAI) AnalyzeSentiment(ctx context.Context, text string) (ai.Sentiment, error) {
	return f.sentiment, f.sentimentErr
}

func (f *fakeAI) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return f.transcript, f.transcribeErr
}

type fakeStore struct {
	messages   []models.ChatMessage
	hasProfile bool
	mood       models.Mood
	moodSet    bool
	nextID     uint
}

func (s *fakeStore) CreateMessage(m *models.ChatMessage) error {
	s.nextID++
	m.ID = s.nextID
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	s.messages = append(s.messages, *m)
	return nil
}

func (s *fakeStore) ListMessages(userID uint) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range s.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeStore) ListPatientMessages(userID uint) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range s.messages {
		if m.UserID == userID && m.IsUserSender {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeStore) SetProfileMood(userID uint, mood models.Mood) (bool, error) {
	if !s.hasProfile {
		return false, nil
	}
	s.mood = mood
	s.moodSet = true
	return true, nil
}

func TestChat_PersistsBothTurns(t *testing.T) {
	store := &fakeStore{hasProfile: true}
	svc := NewService(store, &fakeAI{reply: "Take care of yourself!", sentiment: ai.SentimentNeutral})

	res, err := svc.Chat(context.Background(), 1, "I feel okay today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.messages) != 2 {
		t.Fatalf("expected 2 persisted messages, got %d", len(store.messages))
	}
	if !store.messages[0].IsUserSender {
		t.Error("first persisted message should be the user turn")
	}
	if store.messages[1].IsUserSender {
		t.Error("second persisted message should be the AI turn")
	}
	if res.AIMessage.Content != "Take care of yourself!" {
		t.Errorf("unexpected AI message content: %q", res.AIMessage.Content)
	}
}

func TestChat_FallbackReplyWhenProviderFails(t *testing.T) {
	store := &fakeStore{hasProfile: true}
	svc := NewService(store, &fakeAI{
		replyErr:  errors.New("provider unreachable"),
		sentiment: ai.SentimentNeutral,
	})

	res, err := svc.Chat(context.Background(), 1, "hello")
	if err != nil {
		t.Fatalf("provider failure must not surface as an error: %v", err)
	}
	if res.Reply == "" {
		t.Fatal("ai_response must be non-empty even when the provider is down")
	}
	if res.Reply != ai.FallbackReply {
		t.Errorf("expected fallback reply, got %q", res.Reply)
	}
	if !res.ReplyFallback {
		t.Error("expected ReplyFallback to be set")
	}
	// The fallback is still persisted as the AI turn
	if len(store.messages) != 2 || store.messages[1].Content != ai.FallbackReply {
		t.Error("fallback reply was not persisted as the AI turn")
	}
}

func TestChat_MoodMapping(t *testing.T) {
	tests := []struct {
		sentiment ai.Sentiment
		want      models.Mood
	}{
		{ai.SentimentPositive, models.MoodHappy},
		{ai.SentimentNegative, models.MoodSad},
		{ai.SentimentNeutral, models.MoodNeutral},
		{ai.Sentiment("mixed"), models.MoodNeutral},
	}

	for _, tt := range tests {
		store := &fakeStore{hasProfile: true}
		svc := NewService(store, &fakeAI{reply: "ok", sentiment: tt.sentiment})

		res, err := svc.Chat(context.Background(), 1, "message")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Mood != tt.want {
			t.Errorf("sentiment %q: expected mood %q, got %q", tt.sentiment, tt.want, res.Mood)
		}
		if store.mood != tt.want {
			t.Errorf("sentiment %q: profile snapshot not updated to %q", tt.sentiment, tt.want)
		}
	}
}

func TestChat_NeutralMoodWhenSentimentFails(t *testing.T) {
	store := &fakeStore{hasProfile: true}
	svc := NewService(store, &fakeAI{
		reply:        "ok",
		sentimentErr: errors.New("classifier down"),
	})

	res, err := svc.Chat(context.Background(), 1, "message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Mood != models.MoodNeutral {
		t.Errorf("expected neutral mood on classifier failure, got %q", res.Mood)
	}
	if !res.MoodFallback {
		t.Error("expected MoodFallback to be set")
	}
}

func TestChat_MoodAppliedOnlyWithProfile(t *testing.T) {
	// A doctor has no patient profile; the snapshot update must silently no-op
	store := &fakeStore{hasProfile: false}
	svc := NewService(store, &fakeAI{reply: "ok", sentiment: ai.SentimentPositive})

	res, err := svc.Chat(context.Background(), 7, "message")
	if err != nil {
		t.Fatalf("missing profile must not be an error: %v", err)
	}
	if res.MoodApplied {
		t.Error("mood must not be applied for a user without a profile")
	}
	if store.moodSet {
		t.Error("store recorded a mood update for a user without a profile")
	}

	store = &fakeStore{hasProfile: true}
	svc = NewService(store, &fakeAI{reply: "ok", sentiment: ai.SentimentPositive})
	res, err = svc.Chat(context.Background(), 7, "message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.MoodApplied {
		t.Error("mood must be applied when a profile exists")
	}
}

func TestHistory_OrderedOldestFirst(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := &fakeStore{
		messages: []models.ChatMessage{
			{ID: 3, UserID: 1, Content: "third", Timestamp: base.Add(2 * time.Hour)},
			{ID: 1, UserID: 1, Content: "first", Timestamp: base},
			{ID: 2, UserID: 1, Content: "second", Timestamp: base.Add(time.Hour)},
			{ID: 4, UserID: 2, Content: "someone else", Timestamp: base},
		},
	}
	svc := NewService(store, &fakeAI{})

	msgs, err := svc.History(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if msgs[i].Content != want {
			t.Errorf("position %d: expected %q, got %q", i, want, msgs[i].Content)
		}
	}
}

func TestClinicalSummary_NoActivityShortCircuits(t *testing.T) {
	client := &fakeAI{reply: "should not be used"}
	svc := NewService(&fakeStore{}, client)

	res, err := svc.ClinicalSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Summary != NoActivitySummary {
		t.Errorf("expected literal no-activity response, got %q", res.Summary)
	}
	if client.generateCalls != 0 {
		t.Errorf("generation provider must not be called with empty history, got %d calls", client.generateCalls)
	}
}

func TestClinicalSummary_OnlyPatientTurns(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := &fakeStore{
		messages: []models.ChatMessage{
			{UserID: 1, Content: "my chest hurts", IsUserSender: true, Timestamp: base},
			{UserID: 1, Content: "please call your doctor", IsUserSender: false, Timestamp: base.Add(time.Minute)},
			{UserID: 1, Content: "it started yesterday", IsUserSender: true, Timestamp: base.Add(2 * time.Minute)},
		},
	}
	client := &fakeAI{reply: "Clinical note."}
	svc := NewService(store, client)

	res, err := svc.ClinicalSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Summary != "Clinical note." {
		t.Errorf("expected generated summary, got %q", res.Summary)
	}
	if client.generateCalls != 1 {
		t.Fatalf("expected one provider call, got %d", client.generateCalls)
	}
	if strings.Contains(client.lastUserText, "please call your doctor") {
		t.Error("AI-authored turns must be excluded from the summary prompt")
	}
	if !strings.Contains(client.lastUserText, "my chest hurts") {
		t.Error("patient turns missing from the summary prompt")
	}
	if !strings.Contains(client.lastUserText, "09:00") {
		t.Error("summary prompt should carry message timestamps")
	}
}

func TestClinicalSummary_FallbackOnProviderFailure(t *testing.T) {
	store := &fakeStore{
		messages: []models.ChatMessage{
			{UserID: 1, Content: "hello", IsUserSender: true, Timestamp: time.Now()},
		},
	}
	svc := NewService(store, &fakeAI{replyErr: errors.New("provider down")})

	res, err := svc.ClinicalSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("provider failure must not surface as an error: %v", err)
	}
	if !res.UsedFallback {
		t.Error("expected UsedFallback when the provider fails")
	}
	if res.Summary == "" {
		t.Error("fallback summary must be non-empty")
	}
}

func writeTempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.wav")
	if err := os.WriteFile(path, []byte("RIFF....WAVE"), 0o644); err != nil {
		t.Fatalf("failed to write temp audio: %v", err)
	}
	return path
}

func TestTranscribeAudio_Success(t *testing.T) {
	path := writeTempAudio(t)
	svc := NewService(&fakeStore{}, &fakeAI{transcript: "hello doctor"})

	res := svc.TranscribeAudio(context.Background(), path)
	if res.Status != TranscriptSuccess {
		t.Fatalf("expected success status, got %q", res.Status)
	}
	if res.Transcript != "hello doctor" {
		t.Errorf("unexpected transcript: %q", res.Transcript)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("temp file must be removed after a successful call")
	}
}

func TestTranscribeAudio_NoMatchIsNotAnError(t *testing.T) {
	path := writeTempAudio(t)
	svc := NewService(&fakeStore{}, &fakeAI{transcript: ""})

	res := svc.TranscribeAudio(context.Background(), path)
	if res.Status != TranscriptNoMatch {
		t.Fatalf("expected no-match status, got %q", res.Status)
	}
	if res.Status == TranscriptError {
		t.Error("no-match must not take the error shape")
	}
	if res.Message == "" {
		t.Error("no-match response should carry an explanatory message")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("temp file must be removed after a no-match result")
	}
}

func TestTranscribeAudio_ProviderError(t *testing.T) {
	path := writeTempAudio(t)
	svc := NewService(&fakeStore{}, &fakeAI{transcribeErr: errors.New("codec not supported")})

	res := svc.TranscribeAudio(context.Background(), path)
	if res.Status != TranscriptError {
		t.Fatalf("expected error status, got %q", res.Status)
	}
	if res.Message != "codec not supported" {
		t.Errorf("expected provider message passthrough, got %q", res.Message)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("temp file must be removed even when the provider fails")
	}
}
