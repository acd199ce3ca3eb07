package booking

import (
	"context"

	"tongavip/internal/domain"
)

type RecordStore interface {
	Append(ctx context.Context, record domain.BookingRecord) (string, error)
	ListAll(ctx context.Context) ([]domain.BookingRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type EmailSender interface {
	Send(ctx context.Context, subject, text, html string) error
}
