// Package session persists the lightweight client session between runs:
// the signed-in employee and the last module the user had open. Nothing
// else is cached locally; records are always re-fetched from the backend.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Session is the on-disk state restored at startup.
type Session struct {
	EmployeeID string    `json:"employeeId,omitempty"`
	LastModule string    `json:"lastModule,omitempty"`
	SavedAt    time.Time `json:"savedAt"`
}

// DefaultPath returns the session file location under the user's home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".idms", "session.json")
}

// Load reads the session file. A missing file is not an error; it returns
// an empty session.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, nil
		}
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Save writes the session, creating the parent directory if needed.
func Save(path string, s Session) error {
	s.SavedAt = time.Now()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Clear removes the session file. Removing a file that does not exist is
// not an error.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
