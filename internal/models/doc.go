// Package models defines the records persisted by bpmonitor: patient
// accounts, blood-pressure readings and emergency supporters, together with
// the input validation applied before they reach the services.
package models
