package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tongavip/internal/domain"
	"tongavip/internal/repository"
)

type Service struct {
	store  RecordStore
	mailer EmailSender
	log    *zap.SugaredLogger
}

func NewService(store RecordStore, mailer EmailSender, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		store:  store,
		mailer: mailer,
		log:    log,
	}
}

// Submit persists the booking and then sends the notification email, in that
// order. A store failure is logged but does not fail the request: by the time
// a submission reaches us the customer has already paid, and not
// double-charging wins over not losing the record. A mail failure does fail
// the request, since the email is the primary notification.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (string, error) {
	status := domain.PaymentPending
	if req.PaymentIntentID != "" {
		status = domain.PaymentPaid
	}

	record := domain.BookingRecord{
		PaymentStatus:   status,
		PaymentIntentID: req.PaymentIntentID,
		Subject:         req.Subject,
		TripType:        req.TripType,
		PickupContext:   req.PickupContext,
		Pickup:          req.Pickup,
		Dropoff:         req.Dropoff,
		Date:            req.Date,
		Time:            req.Time,
		ReturnDate:      req.ReturnDate,
		Passengers:      req.Passengers,
		PassengerCounts: req.PassengerCounts,
		Bags:            req.Bags,
		VehicleType:     req.VehicleType,
		Email:           req.Email,
		AddOns:          req.AddOns,
		TotalCents:      req.TotalCents,
	}

	id, err := s.store.Append(ctx, record)
	if err != nil {
		s.log.Errorw("failed to save booking", "error", err)
	} else {
		s.log.Infow("booking saved", "booking_id", id)
	}

	if err := s.mailer.Send(ctx, req.Subject, req.Text, req.HTML); err != nil {
		return id, fmt.Errorf("%w: %v", ErrEmailFailed, err)
	}
	return id, nil
}

// List returns all persisted bookings, newest first.
func (s *Service) List(ctx context.Context) ([]domain.BookingRecord, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.BookingRecord{}
	}
	return records, nil
}

// Delete removes a booking by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
