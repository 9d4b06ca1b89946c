package media

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewUserValidation(t *testing.T) {
	if _, err := NewUser("", "secret", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("blank username: got %v, want ErrValidation", err)
	}
	if _, err := NewUser("alice", "abc", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("short password: got %v, want ErrValidation", err)
	}

	user, err := NewUser("alice", "abcd", "alice@example.com")
	if err != nil {
		t.Fatalf("NewUser failed: %v", err)
	}
	if user.ID == "" {
		t.Error("user should get a fresh id")
	}
	if user.PasswordHash == "abcd" {
		t.Error("password must not be stored in plain text")
	}
	if !user.CheckPassword("abcd") {
		t.Error("CheckPassword should accept the registration password")
	}
	if user.CheckPassword("wrong") {
		t.Error("CheckPassword should reject a wrong password")
	}
	if !user.LastLogin.Equal(user.CreatedAt) {
		t.Error("last login should start at creation time")
	}
}

func TestSetPassword(t *testing.T) {
	user, err := NewUser("alice", "abcd", "")
	if err != nil {
		t.Fatalf("NewUser failed: %v", err)
	}
	if err := user.SetPassword("xy"); !errors.Is(err, ErrValidation) {
		t.Errorf("short replacement: got %v, want ErrValidation", err)
	}
	if err := user.SetPassword("newpass"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	if user.CheckPassword("abcd") {
		t.Error("old password should no longer match")
	}
	if !user.CheckPassword("newpass") {
		t.Error("new password should match")
	}
}

func TestUserJSONRoundTrip(t *testing.T) {
	user, err := NewUser("alice", "abcd", "alice@example.com")
	if err != nil {
		t.Fatalf("NewUser failed: %v", err)
	}
	movie, err := NewMovie("Alien", "Ridley Scott", "1979", "horror", "classic")
	if err != nil {
		t.Fatalf("NewMovie failed: %v", err)
	}
	if err := movie.AddComment("alice", "scary"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	user.Movies = append(user.Movies, movie)

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	if !strings.Contains(string(data), `"watch_date"`) {
		t.Error("serialized movie missing watch_date key")
	}

	var restored User
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal user: %v", err)
	}

	if restored.Username != user.Username {
		t.Errorf("username = %q, want %q", restored.Username, user.Username)
	}
	if restored.Email != user.Email {
		t.Errorf("email = %q, want %q", restored.Email, user.Email)
	}
	if restored.ID != user.ID {
		t.Errorf("id = %q, want %q", restored.ID, user.ID)
	}
	if !restored.CreatedAt.Equal(user.CreatedAt) {
		t.Errorf("created_at = %v, want %v", restored.CreatedAt, user.CreatedAt)
	}
	if len(restored.Movies) != 1 {
		t.Fatalf("movie count = %d, want 1", len(restored.Movies))
	}
	got := restored.Movies[0]
	if got.Title != movie.Title || got.ID != movie.ID {
		t.Errorf("movie identity lost: got %q/%q", got.Title, got.ID)
	}
	if len(got.Comments) != 1 || got.Comments[0].Comment != "scary" {
		t.Errorf("comments lost in round trip: %+v", got.Comments)
	}
	if !restored.CheckPassword("abcd") {
		t.Error("password hash must survive the round trip")
	}
}

func TestUserUnmarshalRejectsCorruptRecords(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"no username", `{"id":"1","password":"x"}`},
		{"bad timestamp", `{"id":"1","username":"alice","created_at":"yesterday"}`},
		{"invalid movie", `{"id":"1","username":"alice","movies":[{"title":"","director":""}]}`},
		{"null movie", `{"id":"1","username":"alice","movies":[null]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var user User
			if err := json.Unmarshal([]byte(tc.data), &user); err == nil {
				t.Fatal("expected unmarshal error")
			}
		})
	}
}
