package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const sessionFile = "session.json"

// SaveSession writes the token and user profile so the next run can
// skip login. File permissions keep the token private to the user.
func SaveSession(session *Session) error {
	dir, err := DataDir()
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, sessionFile), payload, 0600)
}

// LoadSession returns the saved session, or nil when there is none.
func LoadSession() (*Session, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(filepath.Join(dir, sessionFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func ClearSession() error {
	dir, err := DataDir()
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(dir, sessionFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
