package wizard

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrWrongStep    = errors.New("operation not allowed in current step")
	ErrLockedField  = errors.New("field is locked by the pickup context")
	ErrUnknownAddOn = errors.New("unknown add-on")
	ErrNoSession    = errors.New("no payment session in flight")
	ErrNotifyFailed = errors.New("booking confirmed but notification failed")
)
