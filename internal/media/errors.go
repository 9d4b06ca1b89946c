package media

import "errors"

var (
	// ErrValidation marks a rejected field value on entity construction or update.
	ErrValidation = errors.New("validation error")
	// ErrWrongStatus marks an unrecognized watch status value.
	ErrWrongStatus = errors.New("wrong status")
)
