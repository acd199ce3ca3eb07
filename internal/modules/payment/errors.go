package payment

import "errors"

var (
	ErrNotConfigured   = errors.New("payment processor is not configured")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrProcessorFailed = errors.New("payment processor request failed")
	ErrPending         = errors.New("payment is still pending")
	ErrPaymentFailed   = errors.New("payment failed")
)
