package ai

import (
	"context"
	"errors"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Sentiment is the raw three-way label returned by the classification
// provider. Anything outside positive/negative is treated as neutral.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Client is the gateway to the external AI providers. Each method is a
// single one-shot remote call; callers decide what to do on error (the
// handlers substitute safe defaults rather than surfacing provider failures).
type Client interface {
	// GenerateReply sends the system preamble plus user text to the
	// text-generation provider and returns the generated text.
	GenerateReply(ctx context.Context, systemPrompt, userText string) (string, error)
	// AnalyzeSentiment classifies the text as positive, negative or neutral.
	AnalyzeSentiment(ctx context.Context, text string) (Sentiment, error)
	// Transcribe runs speech-to-text against an audio file on disk. An empty
	// transcript with a nil error means the provider recognized no speech.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// OpenAIClient backs all three capabilities with the OpenAI API: chat
// completions for generation and sentiment classification, Whisper for
// speech-to-text. Credentials and model names come from the environment.
type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	sentimentModel string
}

// NewOpenAIClient constructs the provider client from environment variables,
// falling back to default model names when unset.
func NewOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	c := openai.NewClient(apiKey)

	chatModel := os.Getenv("OPENAI_MODEL_CHAT")
	if chatModel == "" {
		chatModel = "gpt-4o-mini"
	}
	sentimentModel := os.Getenv("OPENAI_MODEL_SENTIMENT")
	if sentimentModel == "" {
		sentimentModel = chatModel
	}

	return &OpenAIClient{
		client:         c,
		chatModel:      chatModel,
		sentimentModel: sentimentModel,
	}
}

func (c *OpenAIClient) GenerateReply(ctx context.Context, systemPrompt, userText string) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) AnalyzeSentiment(ctx context.Context, text string) (Sentiment, error) {
	if c.client == nil {
		return SentimentNeutral, errors.New("openai client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.sentimentModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SentimentPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return SentimentNeutral, err
	}
	if len(resp.Choices) == 0 {
		return SentimentNeutral, errors.New("empty classification response")
	}

	label := strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
	switch Sentiment(label) {
	case SentimentPositive, SentimentNegative:
		return Sentiment(label), nil
	default:
		// The model occasionally rambles; anything unrecognized is neutral.
		return SentimentNeutral, nil
	}
}

func (c *OpenAIClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}
