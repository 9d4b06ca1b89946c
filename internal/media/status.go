package media

import (
	"fmt"
	"strings"
)

// Status represents the watch state of a movie.
type Status string

const (
	StatusUnwatched Status = "unwatched"
	StatusWatched   Status = "watched"
)

var statusSet = map[Status]struct{}{
	StatusUnwatched: {},
	StatusWatched:   {},
}

// ParseStatus converts a stored or user-supplied value into a Status.
// Matching is case-insensitive; anything outside the two recognized values
// fails with ErrWrongStatus.
func ParseStatus(value string) (Status, error) {
	candidate := Status(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := statusSet[candidate]; !ok {
		return "", fmt.Errorf("%w: %q is not a valid status (allowed: %q, %q)",
			ErrWrongStatus, value, StatusWatched, StatusUnwatched)
	}
	return candidate, nil
}

// Valid reports whether the status is one of the recognized values.
func (s Status) Valid() bool {
	_, ok := statusSet[s]
	return ok
}

func (s Status) String() string {
	return string(s)
}
