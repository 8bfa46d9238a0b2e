package models

import "time"

// Account is a registered patient. Phone is unique; PatientID is unique
// ignoring case. The PIN itself is never kept, only its salted digest.
type Account struct {
	ID        int64
	FullName  string
	Phone     string
	PatientID string
	PINSalt   []byte
	PINHash   []byte
	CreatedAt time.Time
}
