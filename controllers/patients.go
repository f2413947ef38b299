package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carebridge/carebridge-backend/db"
	"github.com/carebridge/carebridge-backend/models"
	"github.com/carebridge/carebridge-backend/utils"
)

// GetAllPatients godoc
// @Summary Get all patient profiles
// @Description Get all patient profiles with user and assigned doctor
// @Tags patients
// @Accept json
// @Produce json
// @Success 200 {array} models.PatientProfile
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients [get]
func GetAllPatients(c *fiber.Ctx) error {
	var profiles []models.PatientProfile
	if err := db.DB.Preload("User").Preload("AssignedDoctor").Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}
	return c.JSON(profiles)
}

// GetPatient godoc
// @Summary Get a patient profile by ID
// @Description Get a patient profile by ID
// @Tags patients
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} models.PatientProfile
// @Failure 404 {object} utils.ErrorResponse
// @Router /patients/{id} [get]
func GetPatient(c *fiber.Ctx) error {
	id := c.Params("id")
	var profile models.PatientProfile
	if err := db.DB.Preload("User").Preload("AssignedDoctor").First(&profile, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}

// CreatePatient godoc
// @Summary Create a patient profile
// @Description Create a patient profile for an existing user
// @Tags patients
// @Accept json
// @Produce json
// @Param profile body models.PatientProfile true "Patient profile"
// @Success 201 {object} models.PatientProfile
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients [post]
func CreatePatient(c *fiber.Ctx) error {
	var profile models.PatientProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if profile.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
			Error:   "user_id is required",
		})
	}
	// At most one profile per user
	var existing models.PatientProfile
	if db.DB.Where("user_id = ?", profile.UserID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Profile already exists for this user",
			Error:   "duplicate patient profile",
		})
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create patient profile",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// UpdatePatient godoc
// @Summary Update a patient profile by ID
// @Description Update patient profile fields, including status and mood snapshot
// @Tags patients
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param profile body models.PatientProfile true "Patient profile"
// @Success 200 {object} models.PatientProfile
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /patients/{id} [patch]
func UpdatePatient(c *fiber.Ctx) error {
	id := c.Params("id")
	var profile models.PatientProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
			Error:   err.Error(),
		})
	}
	var input models.PatientProfile
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Model(&profile).Updates(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update patient profile",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}

// GetVitals godoc
// @Summary Get vitals history for a patient
// @Description Get the append-only vitals log for a patient, newest first
// @Tags vitals
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {array} models.VitalSign
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients/{id}/vitals [get]
func GetVitals(c *fiber.Ctx) error {
	id := c.Params("id")
	var vitals []models.VitalSign
	if err := db.DB.Where("patient_id = ?", id).Order("timestamp DESC").Find(&vitals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch vitals",
			Error:   err.Error(),
		})
	}
	return c.JSON(vitals)
}

// CreateVital godoc
// @Summary Record new vitals for a patient
// @Description Append a vitals entry and refresh the profile snapshot fields
// @Tags vitals
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param vital body models.VitalSign true "Vital sign"
// @Success 201 {object} models.VitalSign
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /patients/{id}/vitals [post]
func CreateVital(c *fiber.Ctx) error {
	id := c.Params("id")
	var profile models.PatientProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
			Error:   err.Error(),
		})
	}

	var vital models.VitalSign
	if err := c.BodyParser(&vital); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	vital.PatientID = profile.ID

	if err := db.DB.Create(&vital).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to record vitals",
			Error:   err.Error(),
		})
	}

	// Refresh the dashboard snapshot on the profile
	if updates := snapshotUpdates(&vital); len(updates) > 0 {
		if err := db.DB.Model(&profile).Updates(updates).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update profile snapshot",
				Error:   err.Error(),
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(vital)
}

// snapshotUpdates maps reported readings onto the profile snapshot columns.
// Zero values mean the reading was not included and must not clobber the
// last-known snapshot.
func snapshotUpdates(vital *models.VitalSign) map[string]interface{} {
	updates := map[string]interface{}{}
	if vital.HeartRate != 0 {
		updates["last_heart_rate"] = vital.HeartRate
	}
	if vital.Temperature != 0 {
		updates["last_temperature"] = vital.Temperature
	}
	if vital.BloodPressure != "" {
		updates["last_blood_pressure"] = vital.BloodPressure
	}
	return updates
}

// GetMedications godoc
// @Summary Get medications for a patient
// @Tags medications
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {array} models.Medication
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients/{id}/medications [get]
func GetMedications(c *fiber.Ctx) error {
	id := c.Params("id")
	var meds []models.Medication
	if err := db.DB.Where("patient_id = ?", id).Find(&meds).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch medications",
			Error:   err.Error(),
		})
	}
	return c.JSON(meds)
}

// CreateMedication godoc
// @Summary Prescribe a medication for a patient
// @Tags medications
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param medication body models.Medication true "Medication"
// @Success 201 {object} models.Medication
// @Failure 400 {object} utils.ErrorResponse
// @Router /patients/{id}/medications [post]
func CreateMedication(c *fiber.Ctx) error {
	id := c.Params("id")
	var profile models.PatientProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
			Error:   err.Error(),
		})
	}

	var med models.Medication
	if err := c.BodyParser(&med); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if med.Name == "" || med.Dosage == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
			Error:   "name and dosage are required",
		})
	}
	med.PatientID = profile.ID

	if err := db.DB.Create(&med).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create medication",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(med)
}

// ToggleMedication godoc
// @Summary Toggle the taken flag on a medication
// @Tags medications
// @Produce json
// @Param id path int true "Medication ID"
// @Success 200 {object} models.Medication
// @Failure 404 {object} utils.ErrorResponse
// @Router /medications/{id}/toggle [patch]
func ToggleMedication(c *fiber.Ctx) error {
	id := c.Params("id")
	var med models.Medication
	if err := db.DB.First(&med, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Medication not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Model(&med).Update("is_taken", !med.IsTaken).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update medication",
			Error:   err.Error(),
		})
	}
	return c.JSON(med)
}

// DeleteMedication godoc
// @Summary Remove a medication from a patient's schedule
// @Tags medications
// @Param id path int true "Medication ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /medications/{id} [delete]
func DeleteMedication(c *fiber.Ctx) error {
	id := c.Params("id")
	var med models.Medication
	if err := db.DB.First(&med, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Medication not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&med).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete medication",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAlerts godoc
// @Summary Get health alerts for a patient
// @Description Get alerts newest first
// @Tags alerts
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {array} models.HealthAlert
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients/{id}/alerts [get]
func GetAlerts(c *fiber.Ctx) error {
	id := c.Params("id")
	var alerts []models.HealthAlert
	if err := db.DB.Where("patient_id = ?", id).Order("created_at DESC").Find(&alerts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch alerts",
			Error:   err.Error(),
		})
	}
	return c.JSON(alerts)
}

// CreateAlert godoc
// @Summary Raise a health alert for a patient
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param alert body models.HealthAlert true "Alert"
// @Success 201 {object} models.HealthAlert
// @Failure 400 {object} utils.ErrorResponse
// @Router /patients/{id}/alerts [post]
func CreateAlert(c *fiber.Ctx) error {
	id := c.Params("id")
	var profile models.PatientProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
			Error:   err.Error(),
		})
	}

	var alert models.HealthAlert
	if err := c.BodyParser(&alert); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if alert.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
			Error:   "message is required",
		})
	}
	alert.PatientID = profile.ID
	if alert.AlertType == "" {
		alert.AlertType = models.AlertMedium
	}

	if err := db.DB.Create(&alert).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create alert",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(alert)
}

// MarkAlertRead godoc
// @Summary Mark a health alert as read
// @Tags alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} models.HealthAlert
// @Failure 404 {object} utils.ErrorResponse
// @Router /alerts/{id}/read [patch]
func MarkAlertRead(c *fiber.Ctx) error {
	id := c.Params("id")
	var alert models.HealthAlert
	if err := db.DB.First(&alert, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Alert not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Model(&alert).Update("is_read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update alert",
			Error:   err.Error(),
		})
	}
	return c.JSON(alert)
}

// GetCallLogs godoc
// @Summary Get call logs for a patient
// @Description Get call history newest first with doctor preloaded
// @Tags calls
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {array} models.CallLog
// @Failure 500 {object} utils.ErrorResponse
// @Router /patients/{id}/calls [get]
func GetCallLogs(c *fiber.Ctx) error {
	id := c.Params("id")
	var logs []models.CallLog
	if err := db.DB.Preload("Doctor").Where("patient_id = ?", id).Order("started_at DESC").Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch call logs",
			Error:   err.Error(),
		})
	}
	return c.JSON(logs)
}

// GetDoctorCallLogs godoc
// @Summary Get call logs for a doctor
// @Description Get a doctor's call history newest first with patients preloaded
// @Tags calls
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {array} models.CallLog
// @Failure 500 {object} utils.ErrorResponse
// @Router /doctors/{id}/calls [get]
func GetDoctorCallLogs(c *fiber.Ctx) error {
	id := c.Params("id")
	var logs []models.CallLog
	if err := db.DB.Preload("Patient").Preload("Patient.User").Where("doctor_id = ?", id).Order("started_at DESC").Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch call logs",
			Error:   err.Error(),
		})
	}
	return c.JSON(logs)
}

// CreateCallLog godoc
// @Summary Record a completed or missed call
// @Description Call logs are immutable history; there is no update or delete
// @Tags calls
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param call body models.CallLog true "Call log"
// @Success 201 {object} models.CallLog
// @Failure 400 {object} utils.ErrorResponse
// @Router /patients/{id}/calls [post]
func CreateCallLog(c *fiber.Ctx) error {
	id := c.Params("id")
	var profile models.PatientProfile
	if err := db.DB.First(&profile, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient not found",
			Error:   err.Error(),
		})
	}

	var callLog models.CallLog
	if err := c.BodyParser(&callLog); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if callLog.DoctorID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing required fields",
			Error:   "doctor_id is required",
		})
	}
	callLog.PatientID = profile.ID

	if err := db.DB.Create(&callLog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create call log",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(callLog)
}
