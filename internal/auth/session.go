package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/martalocci/taskdeck/internal/model"
)

// SessionPath returns the session file path (~/.taskdeck/session.json).
func SessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskdeck", "session.json"), nil
}

// LoadSession reads the persisted session. A missing or malformed file
// means nobody is logged in.
func LoadSession() model.Session {
	path, err := SessionPath()
	if err != nil {
		return model.Session{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Session{}
	}
	var s model.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Session{}
	}
	return s
}

// SaveSession persists the session for the given user.
func SaveSession(user model.User) error {
	path, err := SessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	s := model.Session{
		Username:   user.Username,
		Role:       user.Role,
		LoggedInAt: time.Now().UTC(),
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// ClearSession removes the persisted session. Logging out when not logged
// in is a no-op.
func ClearSession() error {
	path, err := SessionPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
