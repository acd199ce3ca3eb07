package payment

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"
)

// Service orchestrates the one configured processor: it turns decimal amount
// strings into minor units, creates checkout sessions and resolves
// confirmations into a terminal success or a user-facing failure.
type Service struct {
	processor Processor
	currency  string
	log       *zap.SugaredLogger
}

func NewService(processor Processor, currency string, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		processor: processor,
		currency:  currency,
		log:       log,
	}
}

func (s *Service) Provider() string {
	if s.processor == nil {
		return ""
	}
	return s.processor.Name()
}

func (s *Service) Currency() string { return s.currency }

// CreateSession creates a checkout session for a decimal amount string such
// as "154.80". The currency defaults to the configured one when empty.
func (s *Service) CreateSession(ctx context.Context, amount, currency string) (*Session, error) {
	if s.processor == nil {
		return nil, ErrNotConfigured
	}

	cents, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if currency == "" {
		currency = s.currency
	}

	session, err := s.processor.CreateSession(ctx, cents, strings.ToLower(currency))
	if err != nil {
		s.log.Errorw("create payment session failed",
			"provider", s.processor.Name(),
			"amount_cents", cents,
			"currency", currency,
			"error", err,
		)
		return nil, err
	}
	return session, nil
}

// CreateSessionCents is CreateSession for callers that already hold a
// minor-unit total, such as the booking wizard.
func (s *Service) CreateSessionCents(ctx context.Context, amountCents int64, currency string) (*Session, error) {
	if s.processor == nil {
		return nil, ErrNotConfigured
	}
	if currency == "" {
		currency = s.currency
	}

	session, err := s.processor.CreateSession(ctx, amountCents, strings.ToLower(currency))
	if err != nil {
		s.log.Errorw("create payment session failed",
			"provider", s.processor.Name(),
			"amount_cents", amountCents,
			"currency", currency,
			"error", err,
		)
		return nil, err
	}
	return session, nil
}

// Confirm resolves a session. It returns the confirmation on success and an
// error for both failed and still-pending outcomes; pending is retryable by
// the user, never polled here.
func (s *Service) Confirm(ctx context.Context, session *Session) (*Confirmation, error) {
	if s.processor == nil {
		return nil, ErrNotConfigured
	}

	conf, err := s.processor.ConfirmSession(ctx, session)
	if err != nil {
		s.log.Errorw("confirm payment session failed",
			"provider", s.processor.Name(),
			"session_id", session.ID,
			"error", err,
		)
		return nil, err
	}

	switch conf.State {
	case ConfirmationSucceeded:
		return conf, nil
	case ConfirmationPending:
		s.log.Infow("payment session still pending",
			"provider", s.processor.Name(),
			"session_id", session.ID,
			"status", conf.Reason,
		)
		return nil, fmt.Errorf("%w: %s", ErrPending, conf.Reason)
	default:
		s.log.Infow("payment session failed",
			"provider", s.processor.Name(),
			"session_id", session.ID,
			"reason", conf.Reason,
		)
		return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, conf.Reason)
	}
}

// ParseAmount converts a decimal amount string to minor units. Amounts with
// sub-cent precision or non-positive values are rejected.
func ParseAmount(amount string) (int64, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(amount))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	r.Mul(r, big.NewRat(100, 1))
	if !r.IsInt() {
		return 0, fmt.Errorf("%w: %q has sub-cent precision", ErrInvalidAmount, amount)
	}
	cents := r.Num().Int64()
	if cents <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return cents, nil
}
