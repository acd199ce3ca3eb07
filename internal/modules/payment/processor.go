package payment

import "context"

// Session is one checkout attempt held by the wizard while it sits on the
// payment step. It is single-use: backward navigation discards it and a new
// one is created on the next forward transition.
type Session struct {
	// ID is the processor-side identifier (Stripe payment intent id,
	// ANZ session id).
	ID string
	// ClientSecret is the opaque value the payment widget needs. For the
	// hosted-checkout backend this is the success indicator.
	ClientSecret string
	// OrderID is set by backends that key checkouts by order.
	OrderID string
	// AmountCents and Currency record what the session was created for.
	AmountCents int64
	Currency    string
}

// ConfirmationState classifies the outcome of a confirmation check.
type ConfirmationState string

const (
	ConfirmationSucceeded ConfirmationState = "succeeded"
	ConfirmationPending   ConfirmationState = "pending"
	ConfirmationFailed    ConfirmationState = "failed"
)

type Confirmation struct {
	State ConfirmationState
	// Reference is the processor payment reference when State is succeeded.
	Reference string
	// Reason carries the processor's failure reason or pending status.
	Reason string
}

// Processor is a payment service provider behind which exactly one concrete
// backend is configured per deployment. Every call is attempted once; callers
// surface failures to the user and never retry silently.
type Processor interface {
	// CreateSession requests a checkout session for the given amount in
	// minor units.
	CreateSession(ctx context.Context, amountCents int64, currency string) (*Session, error)
	// ConfirmSession checks the terminal state of a session. A pending
	// result is non-terminal and reported as such, not polled.
	ConfirmSession(ctx context.Context, s *Session) (*Confirmation, error)
	// Name identifies the backend for logging and provider selection.
	Name() string
}
