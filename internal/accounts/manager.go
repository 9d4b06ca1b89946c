package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"kinolog/internal/logging"
	"kinolog/internal/media"
)

// Manager owns the registered users and the JSON store file backing them.
type Manager struct {
	logger *slog.Logger
	path   string
	lock   *flock.Flock
	users  []*media.User
}

// Open acquires the store lock, loads the user graph, and returns a ready
// manager. A missing store file starts an empty user list; a malformed one
// is reported and likewise treated as empty.
func Open(path string, logger *slog.Logger) (*Manager, error) {
	logger = logging.NewComponentLogger(logger, "accounts")

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory %q: %w", dir, err)
		}
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStoreLocked, path)
	}

	m := &Manager{logger: logger, path: path, lock: lock}
	m.load()
	return m, nil
}

// Close releases the store lock.
func (m *Manager) Close() error {
	if m == nil || m.lock == nil {
		return nil
	}
	return m.lock.Unlock()
}

// Path returns the store file location.
func (m *Manager) Path() string {
	return m.path
}

// Users returns all registered users in registration order.
func (m *Manager) Users() []*media.User {
	out := make([]*media.User, len(m.users))
	copy(out, m.users)
	return out
}

// Register creates a new account. Usernames are unique case-insensitively.
func (m *Manager) Register(username, password, email string) (*media.User, error) {
	username = strings.TrimSpace(username)
	if existing := m.FindByUsername(username); existing != nil {
		return nil, fmt.Errorf("%w: username %q is taken", ErrUserExists, existing.Username)
	}

	user, err := media.NewUser(username, password, email)
	if err != nil {
		return nil, err
	}

	m.users = append(m.users, user)
	m.persist()
	m.logger.Info("user registered", logging.String("username", user.Username))
	return user, nil
}

// Authenticate checks the credentials, stamps the last login, and persists.
// A wrong password leaves the account untouched.
func (m *Manager) Authenticate(username, password string) (*media.User, error) {
	user := m.FindByUsername(username)
	if user == nil {
		return nil, fmt.Errorf("%w: no account named %q", ErrUserNotFound, username)
	}
	if !user.CheckPassword(password) {
		return nil, fmt.Errorf("%w: wrong password for %q", ErrWrongPassword, user.Username)
	}

	user.TouchLastLogin()
	m.persist()
	m.logger.Info("user authenticated", logging.String("username", user.Username))
	return user, nil
}

// FindByUsername returns the account matching the username
// case-insensitively, or nil when there is none.
func (m *Manager) FindByUsername(username string) *media.User {
	for _, user := range m.users {
		if strings.EqualFold(user.Username, username) {
			return user
		}
	}
	return nil
}

// FindByID returns the account with the exact id.
func (m *Manager) FindByID(id string) (*media.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: no account with id %q", ErrUserNotFound, id)
}

// Delete removes an account and its movie collection, then persists.
func (m *Manager) Delete(username string) (*media.User, error) {
	for i, user := range m.users {
		if strings.EqualFold(user.Username, username) {
			m.users = append(m.users[:i], m.users[i+1:]...)
			m.persist()
			m.logger.Info("user deleted", logging.String("username", user.Username))
			return user, nil
		}
	}
	return nil, fmt.Errorf("%w: no account named %q", ErrUserNotFound, username)
}

// ChangePassword verifies the old password and stores a hash of the new one.
func (m *Manager) ChangePassword(username, oldPassword, newPassword string) error {
	user := m.FindByUsername(username)
	if user == nil {
		return fmt.Errorf("%w: no account named %q", ErrUserNotFound, username)
	}
	if !user.CheckPassword(oldPassword) {
		return fmt.Errorf("%w: wrong password for %q", ErrWrongPassword, user.Username)
	}
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	m.persist()
	m.logger.Info("password changed", logging.String("username", user.Username))
	return nil
}

// Save serializes every user, including the nested movie collections, to
// the store file. Writes go through a temp file and a rename.
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.users, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if len(m.users) == 0 {
		data = []byte("[]")
	}

	tmpPath := m.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := os.Rename(tmpPath, m.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp store: %w", err)
	}
	return nil
}

// persist saves the store and downgrades failures to a warning. The
// in-memory state remains the source of truth for the session.
func (m *Manager) persist() {
	if err := m.Save(); err != nil {
		m.logger.Warn("failed to persist user store",
			logging.String("path", m.path),
			logging.Error(err))
	}
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Debug("user store absent, starting empty", logging.String("path", m.path))
			return
		}
		m.logger.Warn("failed to read user store, starting empty",
			logging.String("path", m.path),
			logging.Error(err))
		return
	}
	if len(data) == 0 {
		return
	}

	var users []*media.User
	if err := json.Unmarshal(data, &users); err != nil {
		m.logger.Warn("user store is malformed, starting empty",
			logging.String("path", m.path),
			logging.Error(err))
		return
	}
	for _, user := range users {
		if user == nil {
			m.logger.Warn("user store contains a null entry, starting empty",
				logging.String("path", m.path))
			return
		}
	}

	m.users = users
	m.logger.Debug("user store loaded",
		logging.Int("user_count", len(users)),
		logging.String("path", m.path))
}
