// Package migrate adopts a pre-existing plain Claude installation as a
// ccx profile, so switching to ccx does not require logging in again.
package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.dot.industries/ccx/internal/config"
	"go.dot.industries/ccx/internal/launch"
)

// credentialsFile marks an install whose login flow has completed.
const credentialsFile = ".credentials.json"

// DetectConfigDir locates an existing Claude config directory: the
// tool's own config-dir variable when set, otherwise ~/.claude.
// Returns false when neither points at an existing directory.
func DetectConfigDir() (string, bool) {
	if dir := os.Getenv(launch.EnvConfigDir); dir != "" {
		return dir, dirExists(dir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	dir := filepath.Join(home, ".claude")
	return dir, dirExists(dir)
}

// Adopt builds a profile that points at an existing install directory.
// The auth type is detected from the directory contents: a credentials
// file means a completed OAuth login; anything else defaults to oauth
// as well, since that is the tool's own default flow. The directory is
// referenced in place, never copied or modified.
func Adopt(dir, description string, now time.Time) (config.Profile, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return config.Profile{}, fmt.Errorf("resolving absolute path for %s: %w", dir, err)
	}

	if !dirExists(abs) {
		return config.Profile{}, fmt.Errorf("config directory %s does not exist", abs)
	}

	return config.Profile{
		AuthType:    config.AuthOAuth,
		ConfigDir:   abs,
		Description: description,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}, nil
}

// HasCredentials reports whether dir contains a credentials file from a
// completed login.
func HasCredentials(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, credentialsFile))
	return err == nil && !info.IsDir()
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
