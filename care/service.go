package care

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/carebridge/carebridge-backend/ai"
	"github.com/carebridge/carebridge-backend/models"
)

// NoActivitySummary is returned when a patient has no chat history to
// summarize. The generation provider is not called in that case.
const NoActivitySummary = "No patient activity recorded recently."

// Store is the persistence surface the care flows need. The production
// implementation wraps gorm; tests substitute an in-memory fake.
type Store interface {
	CreateMessage(m *models.ChatMessage) error
	// ListMessages returns every chat turn for a user.
	ListMessages(userID uint) ([]models.ChatMessage, error)
	// ListPatientMessages returns only the patient-authored turns.
	ListPatientMessages(userID uint) ([]models.ChatMessage, error)
	// SetProfileMood updates the mood snapshot on the user's patient profile.
	// It reports false when the user has no profile (e.g. a doctor), which is
	// not an error.
	SetProfileMood(userID uint, mood models.Mood) (bool, error)
}

// Service orchestrates persistence and provider calls for the chat, summary
// and transcription flows. Handlers stay thin and delegate here.
type Service struct {
	Store Store
	AI    ai.Client
}

func NewService(store Store, client ai.Client) *Service {
	return &Service{Store: store, AI: client}
}

// ChatResult reports the outcome of one chat turn. The fallback flags let
// callers tell "provider succeeded" from "safe default substituted", which a
// bare value cannot.
type ChatResult struct {
	Reply         string
	ReplyFallback bool
	Mood          models.Mood
	MoodFallback  bool
	MoodApplied   bool
	UserMessage   models.ChatMessage
	AIMessage     models.ChatMessage
}

// Chat runs the chat-and-mood pipeline: persist the patient turn, generate a
// reply (empathetic fallback on provider failure), persist the reply, classify
// sentiment (neutral on failure), and best-effort update the profile mood
// snapshot. The steps are not wrapped in one transaction; a crash mid-flight
// can leave a user turn without its reply.
func (s *Service) Chat(ctx context.Context, userID uint, content string) (*ChatResult, error) {
	userMsg := models.ChatMessage{
		UserID:       userID,
		Content:      content,
		IsUserSender: true,
	}
	if err := s.Store.CreateMessage(&userMsg); err != nil {
		return nil, fmt.Errorf("save user message: %w", err)
	}

	res := &ChatResult{UserMessage: userMsg}

	reply, err := s.AI.GenerateReply(ctx, ai.CareAssistantPrompt, content)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			log.Printf("Generation provider error for user %d: %v", userID, err)
		}
		reply = ai.FallbackReply
		res.ReplyFallback = true
	}
	res.Reply = reply

	aiMsg := models.ChatMessage{
		UserID:       userID,
		Content:      reply,
		IsUserSender: false,
	}
	if err := s.Store.CreateMessage(&aiMsg); err != nil {
		return nil, fmt.Errorf("save ai message: %w", err)
	}
	res.AIMessage = aiMsg

	sentiment, err := s.AI.AnalyzeSentiment(ctx, content)
	if err != nil {
		log.Printf("Sentiment provider error for user %d: %v", userID, err)
		sentiment = ai.SentimentNeutral
		res.MoodFallback = true
	}
	res.Mood = ai.MoodFromSentiment(sentiment)

	applied, err := s.Store.SetProfileMood(userID, res.Mood)
	if err != nil {
		// Mood snapshot is best-effort; the chat turn already succeeded.
		log.Printf("Failed to update mood snapshot for user %d: %v", userID, err)
	}
	res.MoodApplied = applied

	return res, nil
}

// History returns the user's conversation oldest-first. Ordering is enforced
// here as well as in the store query so reconstruction never depends on
// insert order.
func (s *Service) History(userID uint) ([]models.ChatMessage, error) {
	msgs, err := s.Store.ListMessages(userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
	return msgs, nil
}

// SummaryResult carries the generated clinical note and whether a fallback
// was substituted for it.
type SummaryResult struct {
	Summary      string
	UsedFallback bool
}

// ClinicalSummary builds a doctor-facing note from the patient's own chat
// turns. With no patient activity it short-circuits to a static response
// without touching the provider. The summary is never persisted.
func (s *Service) ClinicalSummary(ctx context.Context, userID uint) (*SummaryResult, error) {
	msgs, err := s.Store.ListPatientMessages(userID)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return &SummaryResult{Summary: NoActivitySummary}, nil
	}

	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})

	var logs strings.Builder
	logs.WriteString("Patient Logs:\n")
	for _, m := range msgs {
		fmt.Fprintf(&logs, "- %s (%s)\n", m.Content, m.Timestamp.Format("15:04"))
	}

	summary, err := s.AI.GenerateReply(ctx, ai.ClinicalScribePrompt, logs.String())
	if err != nil {
		log.Printf("Generation provider error summarizing user %d: %v", userID, err)
		return &SummaryResult{Summary: ai.FallbackReply, UsedFallback: true}, nil
	}
	return &SummaryResult{Summary: summary}, nil
}

// Transcription statuses. NoMatch is its own shape so callers can tell "the
// provider heard nothing" from "the provider failed".
const (
	TranscriptSuccess = "success"
	TranscriptNoMatch = "no_match"
	TranscriptError   = "error"
)

const noSpeechMessage = "No speech could be recognized"

// TranscriptionResult is the three-way outcome of a transcription attempt.
type TranscriptionResult struct {
	Status     string `json:"status"`
	Transcript string `json:"transcript,omitempty"`
	Message    string `json:"message,omitempty"`
}

// TranscribeAudio runs speech-to-text against an audio file and removes the
// file before returning, whatever the outcome. Deletion failure is logged and
// swallowed; the OS reaps stale temp files eventually. Provider failures are
// folded into the result rather than returned as errors.
func (s *Service) TranscribeAudio(ctx context.Context, audioPath string) TranscriptionResult {
	defer func() {
		if err := os.Remove(audioPath); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: could not delete temp file %s: %v", audioPath, err)
		}
	}()

	text, err := s.AI.Transcribe(ctx, audioPath)
	if err != nil {
		return TranscriptionResult{Status: TranscriptError, Message: err.Error()}
	}
	if text == "" {
		return TranscriptionResult{Status: TranscriptNoMatch, Message: noSpeechMessage}
	}
	return TranscriptionResult{Status: TranscriptSuccess, Transcript: text}
}
