// Package common provides shared constants, types, and utilities
// used across the WG Menu Bar application.
package common

import "time"

// PreferenceStore defines the interface for persisting the single
// "preferred tunnel name" value between runs.
// Implementations may use the system keyring, a plain file, etc.
type PreferenceStore interface {
	// PreferredTunnel returns the stored tunnel name, if any.
	PreferredTunnel() (string, bool)
	// SetPreferredTunnel stores the tunnel name.
	SetPreferredTunnel(name string) error
}

// ActionEvent describes one completed connect or disconnect attempt.
type ActionEvent struct {
	ID      string
	Time    time.Time
	Action  string // "connect" or "disconnect"
	Tunnel  string
	Success bool
	Message string
}

// ActionRecorder defines the interface for recording action events.
type ActionRecorder interface {
	// Record persists an action event.
	Record(event ActionEvent) error
}

// Notifier defines the interface for sending notifications.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(title, message string) error
}

// Logger defines the interface for leveled logging.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}
