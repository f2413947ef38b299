package controllers

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/carebridge/carebridge-backend/care"
	"github.com/carebridge/carebridge-backend/db"
	"github.com/carebridge/carebridge-backend/models"
	"github.com/carebridge/carebridge-backend/redis"
	"github.com/carebridge/carebridge-backend/utils"
)

// CareService is injected from main so the AI gateway has one lifecycle and
// tests can substitute fakes.
var CareService *care.Service

func InitCommunication(svc *care.Service) {
	CareService = svc
}

type chatInput struct {
	UserID  uint   `json:"user_id"`
	Content string `json:"content"`
}

// PostChat godoc
// @Summary Send a chat message to CareAI
// @Description Persists the message, generates a reply, detects mood and updates the patient snapshot
// @Tags communication
// @Accept json
// @Produce json
// @Param message body chatInput true "Chat message"
// @Success 201 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /communication/chat [post]
func PostChat(c *fiber.Ctx) error {
	input := new(chatInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// Field-level validation errors, serializer style
	fieldErrors := fiber.Map{}
	if input.UserID == 0 {
		fieldErrors["user_id"] = "This field is required."
	}
	if input.Content == "" {
		fieldErrors["content"] = "This field is required."
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fieldErrors)
	}

	var user models.User
	if err := db.DB.First(&user, input.UserID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"user_id": "Invalid user.",
		})
	}

	result, err := CareService.Chat(c.Context(), input.UserID, input.Content)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to process chat message",
			Error:   err.Error(),
		})
	}

	// New activity invalidates any cached clinical summary
	redis.InvalidateSummary(input.UserID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":        "success",
		"ai_response":   result.Reply,
		"detected_mood": result.Mood,
		"data":          result.AIMessage,
	})
}

// GetChatHistory godoc
// @Summary Get chat history for a user
// @Description Messages are returned strictly oldest first
// @Tags communication
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.ChatMessage
// @Failure 500 {object} utils.ErrorResponse
// @Router /communication/chat/{user_id} [get]
func GetChatHistory(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("user_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	msgs, err := CareService.History(uint(userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch chat history",
			Error:   err.Error(),
		})
	}
	return c.JSON(msgs)
}

// Transcribe godoc
// @Summary Transcribe an uploaded audio recording
// @Description Saves the upload to a temp file, runs speech-to-text and always removes the file afterward
// @Tags communication
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file"
// @Success 200 {object} care.TranscriptionResult
// @Failure 400 {object} fiber.Map
// @Failure 500 {object} fiber.Map
// @Router /communication/transcribe [post]
func Transcribe(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No audio file provided",
		})
	}

	// Unique name so concurrent uploads never collide
	tempPath := filepath.Join(os.TempDir(), "carebridge-"+uuid.NewString()+".wav")
	if err := c.SaveFile(file, tempPath); err != nil {
		// A failed save can still leave a partial file behind
		removeTempFile(tempPath)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	result := CareService.TranscribeAudio(c.Context(), tempPath)
	return c.JSON(result)
}

// removeTempFile is best-effort cleanup for a partially written upload.
func removeTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not delete temp file %s: %v", path, err)
	}
}

// ClinicalSummary godoc
// @Summary Generate a clinical summary of a patient's chat activity
// @Description Summarizes patient-authored turns into a clinical note; cached briefly in Redis
// @Tags communication
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /communication/summary/{user_id} [get]
func ClinicalSummary(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("user_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if cached := redis.GetCachedSummary(uint(userID)); cached != "" {
		return c.JSON(fiber.Map{
			"status":     "success",
			"patient_id": userID,
			"summary":    cached,
		})
	}

	result, err := CareService.ClinicalSummary(c.Context(), uint(userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate summary",
			Error:   err.Error(),
		})
	}

	if !result.UsedFallback && result.Summary != care.NoActivitySummary {
		redis.CacheSummary(uint(userID), result.Summary)
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"patient_id": userID,
		"summary":    result.Summary,
	})
}
