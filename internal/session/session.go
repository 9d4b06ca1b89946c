// Package session stores the logged-in user as an explicit file-backed
// handle instead of process-global state. A session is set on login,
// cleared on logout, and also cleared when the referenced account is
// deleted.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kinolog/internal/media"
)

// ErrNoSession marks an operation that needs a logged-in user when none is.
var ErrNoSession = errors.New("no active session")

// Session identifies the currently logged-in user.
type Session struct {
	Username   string    `json:"username"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// Store reads and writes the session handle file.
type Store struct {
	path string
}

// NewStore binds a store to the session file location.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Current returns the active session, or ErrNoSession when none exists.
func (s *Store) Current() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if sess.Username == "" {
		return nil, ErrNoSession
	}
	return &sess, nil
}

// Set records user as the logged-in account.
func (s *Store) Set(user *media.User) error {
	if user == nil {
		return errors.New("session user is nil")
	}
	sess := Session{Username: user.Username, LoggedInAt: time.Now().Truncate(time.Second)}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear ends the active session. It fails with ErrNoSession when there is
// nothing to clear.
func (s *Store) Clear() error {
	if _, err := s.Current(); err != nil {
		return err
	}
	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// ClearIfUser ends the session only when it references username. Used when
// an account is deleted so a stale handle never points at a missing user.
func (s *Store) ClearIfUser(username string) error {
	sess, err := s.Current()
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		return err
	}
	if !strings.EqualFold(sess.Username, username) {
		return nil
	}
	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
