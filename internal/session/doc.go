// Package session tracks which account is signed in.
//
// A Session is an explicit, mutex-guarded object owned by whoever drives the
// application (one per controller). Signing in issues an HS256 JWT whose
// subject is the account ID; once the token expires the session reads as
// signed out. Nothing here is persisted, so a restarted process always
// starts signed out.
//
// Repository couples a Session with the persistence store and is the only
// data-access surface the controller sees.
package session
