// Package util provides filesystem path helpers and logging wrappers
// shared across the application.
package util

import "log"

// LogError logs an error with context if it is non-nil. The TUI never
// shows errors to the user, so this is the only failure channel for
// best-effort operations.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}
