// Package readings persists blood-pressure readings. Each reading belongs
// to exactly one account; inserting for an account that does not exist
// fails with common.ErrorUnknownAccount.
//
// Timestamps are stored as milliseconds since the Unix epoch. Listings are
// newest first, with the higher ID winning a tie on timestamp.
package readings
