package media

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TimeLayout is the serialization format for account timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// MinPasswordLength is enforced at registration and on password change.
const MinPasswordLength = 4

// User is a registered account together with its exclusively owned movie
// collection. PasswordHash holds a bcrypt hash; the plain password never
// leaves the constructor or the credential checks.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
	LastLogin    time.Time
	Movies       []*Movie
}

// NewUser constructs a user with a fresh identifier and a hashed password.
func NewUser(username, password, email string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().Truncate(time.Second)
	return &User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hash),
		Email:        strings.TrimSpace(email),
		CreatedAt:    now,
		LastLogin:    now,
	}, nil
}

// CheckPassword reports whether the supplied plain password matches the
// stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetPassword validates and replaces the stored password hash.
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// TouchLastLogin stamps the last successful authentication time.
func (u *User) TouchLastLogin() {
	u.LastLogin = time.Now().Truncate(time.Second)
}

// userRecord is the on-disk shape of a user. Timestamps are stored as
// "YYYY-MM-DD HH:MM:SS" strings and the hash keeps the historical field
// name "password".
type userRecord struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Email     string   `json:"email"`
	CreatedAt string   `json:"created_at"`
	LastLogin string   `json:"last_login"`
	Movies    []*Movie `json:"movies"`
}

// MarshalJSON serializes the user in the persisted store format.
func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userRecord{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.PasswordHash,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(TimeLayout),
		LastLogin: u.LastLogin.Format(TimeLayout),
		Movies:    u.Movies,
	})
}

// UnmarshalJSON reconstructs a user from the persisted store format and
// validates every embedded movie.
func (u *User) UnmarshalJSON(data []byte) error {
	var record userRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	if strings.TrimSpace(record.Username) == "" {
		return fmt.Errorf("%w: stored user %q has no username", ErrValidation, record.ID)
	}

	createdAt, err := parseTimestamp(record.CreatedAt)
	if err != nil {
		return fmt.Errorf("user %q: created_at: %w", record.Username, err)
	}
	lastLogin, err := parseTimestamp(record.LastLogin)
	if err != nil {
		return fmt.Errorf("user %q: last_login: %w", record.Username, err)
	}

	for _, movie := range record.Movies {
		if movie == nil {
			return fmt.Errorf("%w: user %q has a null movie entry", ErrValidation, record.Username)
		}
		if err := movie.Validate(); err != nil {
			return fmt.Errorf("user %q: %w", record.Username, err)
		}
	}

	u.ID = record.ID
	u.Username = record.Username
	u.PasswordHash = record.Password
	u.Email = record.Email
	u.CreatedAt = createdAt
	u.LastLogin = lastLogin
	u.Movies = record.Movies
	return nil
}

func parseTimestamp(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	parsed, err := time.ParseInLocation(TimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return parsed, nil
}
