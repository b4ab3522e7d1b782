package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir returns the per-user data directory for the application,
// honoring XDG_DATA_HOME.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where exported reports land by default: a capitalized
// app folder under the user's documents directory.
func ReportsDir(app string) string {
	return filepath.Join(documentsDir(), strings.ToUpper(app[:1])+app[1:])
}

func documentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return base
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, "Documents")
}
