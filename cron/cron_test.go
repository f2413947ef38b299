package cron

import (
	"testing"
	"time"
)

func TestStartOfDay_UsesLocalMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2024, 3, 1, 2, 30, 0, 0, loc)

	got := startOfDay(now)

	want := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got.Location() != loc {
		t.Errorf("expected location %v, got %v", loc, got.Location())
	}

	// 02:30 at UTC+5 is the previous day in UTC; a UTC-based truncation
	// would land on Feb 29 instead of the local March 1 midnight.
	if got.Day() != 1 || got.Month() != time.March {
		t.Errorf("day boundary shifted by timezone offset: %v", got)
	}
}
