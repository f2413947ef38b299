package controllers

import (
	"testing"

	"github.com/carebridge/carebridge-backend/models"
)

func TestSnapshotUpdates_FullReading(t *testing.T) {
	vital := &models.VitalSign{
		HeartRate:     80,
		Temperature:   99.1,
		BloodPressure: "130/85",
	}

	updates := snapshotUpdates(vital)

	if len(updates) != 3 {
		t.Fatalf("expected 3 snapshot updates, got %d", len(updates))
	}
	if updates["last_heart_rate"] != 80 {
		t.Errorf("expected heart rate 80, got %v", updates["last_heart_rate"])
	}
	if updates["last_temperature"] != 99.1 {
		t.Errorf("expected temperature 99.1, got %v", updates["last_temperature"])
	}
	if updates["last_blood_pressure"] != "130/85" {
		t.Errorf("expected blood pressure 130/85, got %v", updates["last_blood_pressure"])
	}
}

func TestSnapshotUpdates_SkipsUnreportedFields(t *testing.T) {
	// A steps-only entry carries no heart rate, temperature or blood
	// pressure; the last-known snapshot must keep its values.
	vital := &models.VitalSign{Steps: 4000}

	updates := snapshotUpdates(vital)

	if len(updates) != 0 {
		t.Errorf("expected no snapshot updates for unreported readings, got %v", updates)
	}

	vital = &models.VitalSign{HeartRate: 72}
	updates = snapshotUpdates(vital)
	if len(updates) != 1 {
		t.Fatalf("expected only the heart rate update, got %v", updates)
	}
	if _, ok := updates["last_temperature"]; ok {
		t.Error("zero temperature must not be written to the snapshot")
	}
	if _, ok := updates["last_blood_pressure"]; ok {
		t.Error("empty blood pressure must not be written to the snapshot")
	}
}
