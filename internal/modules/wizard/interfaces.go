package wizard

import (
	"context"

	"tongavip/internal/domain"
	"tongavip/internal/modules/payment"
)

type PaymentOrchestrator interface {
	CreateSessionCents(ctx context.Context, amountCents int64, currency string) (*payment.Session, error)
	Confirm(ctx context.Context, session *payment.Session) (*payment.Confirmation, error)
}

type RecordStore interface {
	Append(ctx context.Context, record domain.BookingRecord) (string, error)
}

type Notifier interface {
	Notify(ctx context.Context, record domain.BookingRecord) error
}
