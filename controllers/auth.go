package controllers

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/carebridge/carebridge-backend/db"
	"github.com/carebridge/carebridge-backend/models"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

// Register handles user registration. Registering a patient also creates an
// empty PatientProfile so the dashboard has something to render.
func Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Name     string          `json:"name"`
		Email    string          `json:"email"`
		Password string          `json:"password"`
		Role     models.UserRole `json:"role"`
	}

	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// Validate input
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	if input.Role == "" {
		input.Role = models.RolePatient
	}
	if input.Role != models.RolePatient && input.Role != models.RoleDoctor {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Role must be patient or doctor",
		})
	}

	// Check if user already exists
	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email already registered",
		})
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     input.Role,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user: " + err.Error(),
		})
	}

	// Patients get an empty profile at signup
	if user.Role == models.RolePatient {
		profile := models.PatientProfile{
			UserID:        user.ID,
			CaregiverName: "Not Assigned",
		}
		if err := db.DB.Create(&profile).Error; err != nil {
			log.Printf("Error creating patient profile for user %d: %v", user.ID, err)
		}
	}

	user.Password = ""

	token, refreshToken, err := issueTokens(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"user_id":      user.ID,
		"role":         user.Role,
		"name":         user.Name,
		"token":        token,
		"refreshToken": refreshToken,
	})
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// Find user
	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	// Compare passwords
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid credentials",
		})
	}

	token, refreshToken, err := issueTokens(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"token":        token,
		"refreshToken": refreshToken,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// issueTokens creates the 24h access token and 7d refresh token pair.
func issueTokens(user *models.User) (string, string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString(jwtSecret())
	if err != nil {
		return "", "", err
	}

	return tokenString, refreshTokenString, nil
}

// GetUserProfile returns the current user's details
func GetUserProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.Password = ""
	return c.JSON(user)
}

// GetSettings fetches user preferences, creating the row on first access
func GetSettings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	settings, err := getOrCreateSettings(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load settings",
		})
	}

	return c.JSON(fiber.Map{
		"notifications": settings.NotificationsEnabled,
		"voice_alerts":  settings.VoiceAlertsEnabled,
		"dark_mode":     settings.DarkModeEnabled,
	})
}

// UpdateSettings updates user preferences (dark mode, etc.)
func UpdateSettings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type SettingsInput struct {
		Notifications *bool `json:"notifications"`
		VoiceAlerts   *bool `json:"voice_alerts"`
		DarkMode      *bool `json:"dark_mode"`
	}

	input := new(SettingsInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	settings, err := getOrCreateSettings(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load settings",
		})
	}

	updates := map[string]interface{}{}
	if input.Notifications != nil {
		updates["notifications_enabled"] = *input.Notifications
	}
	if input.VoiceAlerts != nil {
		updates["voice_alerts_enabled"] = *input.VoiceAlerts
	}
	if input.DarkMode != nil {
		updates["dark_mode_enabled"] = *input.DarkMode
	}

	if len(updates) > 0 {
		if err := db.DB.Model(settings).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update settings",
			})
		}
	}

	return c.JSON(fiber.Map{"success": true})
}

func getOrCreateSettings(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := db.DB.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}

	settings = models.UserSettings{
		UserID:               userID,
		NotificationsEnabled: true,
		VoiceAlertsEnabled:   true,
	}
	if err := db.DB.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// Logout doesn't actually invalidate the token as JWTs are stateless
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)
	newClaims := jwt.MapClaims{
		"id":    claims["id"],
		"email": claims["email"],
		"role":  claims["role"],
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	tokenString, err := newToken.SignedString(jwtSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}
