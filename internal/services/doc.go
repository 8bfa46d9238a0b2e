// Package services contains the application use cases.
//
// Controller owns the signed-in state (account, latest reading, reading
// history) and the authentication and reading-capture use cases. The SOS,
// pairing and export services build on the account carried in the request
// context (see session.WithAccount).
package services
