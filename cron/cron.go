package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/carebridge/carebridge-backend/db"
	"github.com/carebridge/carebridge-backend/models"
	"github.com/carebridge/carebridge-backend/utils"
)

// StartCronJobs initializes and starts the scheduler for the missed
// medication sweep
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Hourly sweep for medications still marked not taken
	_, err := c.AddFunc("0 * * * *", raiseMissedMedicationAlerts)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for medication alerts")
}

// raiseMissedMedicationAlerts creates a HealthAlert for every medication that
// is still untaken and notifies the assigned doctor. One alert per medication
// per day.
func raiseMissedMedicationAlerts() {
	var meds []models.Medication
	err := db.DB.Preload("Patient").Preload("Patient.User").Preload("Patient.AssignedDoctor").
		Where("is_taken = ?", false).
		Find(&meds).Error
	if err != nil {
		log.Printf("Error fetching medications for alert sweep: %v", err)
		return
	}

	fmt.Printf("Found %d untaken medications\n", len(meds))

	dayStart := startOfDay(time.Now())

	for _, med := range meds {
		message := fmt.Sprintf("Medication not taken: %s (%s, %s)", med.Name, med.Dosage, med.TimeOfDay)

		// Skip if today's alert for this medication already exists
		var existing models.HealthAlert
		if db.DB.Where("patient_id = ? AND message = ? AND created_at >= ?",
			med.PatientID, message, dayStart).First(&existing).RowsAffected > 0 {
			continue
		}

		alert := models.HealthAlert{
			PatientID: med.PatientID,
			AlertType: models.AlertMedium,
			Message:   message,
		}
		if err := db.DB.Create(&alert).Error; err != nil {
			log.Printf("Failed to create alert for medication %d: %v", med.ID, err)
			continue
		}

		if med.Patient.AssignedDoctor != nil && med.Patient.AssignedDoctor.Email != "" {
			if err := sendMedicationAlertEmail(&med); err != nil {
				log.Printf("Failed to email doctor for medication %d: %v", med.ID, err)
				continue
			}
			log.Printf("Sent medication alert for patient %d to %s", med.PatientID, med.Patient.AssignedDoctor.Email)
		}
	}
}

// startOfDay returns midnight of now's day in now's own location. Truncating
// by 24h would snap to UTC day boundaries instead of the local midnight.
func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// sendMedicationAlertEmail constructs and sends the alert email
func sendMedicationAlertEmail(med *models.Medication) error {
	subject := fmt.Sprintf("Missed Medication Alert - %s", med.Patient.User.Name)
	body := fmt.Sprintf(`
		<p>Dear Dr. %s,</p>
		<p>Your patient has not taken a scheduled medication.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Patient:</strong> %s</li>
			<li><strong>Medication:</strong> %s</li>
			<li><strong>Dosage:</strong> %s</li>
			<li><strong>Schedule:</strong> %s, %s</li>
		</ul>
		<p>Please follow up with the patient or their caregiver.</p>
		<p>Best regards,</p>
		<p>CareBridge</p>
	`, med.Patient.AssignedDoctor.Name, med.Patient.User.Name,
		med.Name, med.Dosage, med.Frequency, med.TimeOfDay)

	return utils.SendEmail(med.Patient.AssignedDoctor.Email, subject, body)
}
