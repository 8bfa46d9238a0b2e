package models

import (
	"fmt"
	"time"
)

// Reading is one blood-pressure / heart-rate observation. Timestamp has
// millisecond precision once persisted.
type Reading struct {
	ID        int64
	AccountID int64
	// Systolic and Diastolic are in mmHg.
	Systolic  int
	Diastolic int
	// HeartRate is in bpm; 0 means not measured.
	HeartRate int
	Timestamp time.Time
	Manual    bool
	Notes     string
}

// String renders the pressure pair the way the dashboard shows it.
func (r Reading) String() string {
	return fmt.Sprintf("%d/%d", r.Systolic, r.Diastolic)
}

// Elevated reports whether either pressure is at or above the hypertension
// threshold of 140/90 mmHg.
func (r Reading) Elevated() bool {
	return r.Systolic >= 140 || r.Diastolic >= 90
}
