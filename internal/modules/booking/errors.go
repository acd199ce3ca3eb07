package booking

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("booking not found")
	ErrEmailFailed = errors.New("failed to send email")
)
