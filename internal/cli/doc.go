// Package cli provides the interactive bpmonitor command-line client.
//
// It wires configuration, storage, the session-backed account controller,
// the SOS and export integrations and an interactive REPL. The REPL plays
// the part of the app screens: register and login, a dashboard with the
// latest reading, the reading history, manual entry, supporters, SOS,
// device pairing and export.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See NewApp and runREPL for details.
package cli
