package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"tongavip/internal/domain"
	"tongavip/internal/modules/catalog"
)

const defaultSubject = "New Message from Website"

// Service formats bookings into notification emails and dispatches them to
// the fixed office address. Delivery is attempted exactly once per call.
type Service struct {
	mailer Mailer
	to     string
	log    *zap.SugaredLogger
}

func NewService(mailer Mailer, to string, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		mailer: mailer,
		to:     to,
		log:    log,
	}
}

// Send relays an already-formatted message. An empty subject falls back to
// the default and an empty HTML body falls back to the plain text, preserving
// the relay's historical behavior.
func (s *Service) Send(ctx context.Context, subject, text, htmlBody string) error {
	if subject == "" {
		subject = defaultSubject
	}
	if htmlBody == "" {
		htmlBody = text
	}

	if err := s.mailer.Send(s.to, subject, text, htmlBody); err != nil {
		s.log.Errorw("email dispatch failed", "subject", subject, "error", err)
		return err
	}
	s.log.Infow("email sent", "subject", subject, "to", s.to)
	return nil
}

// Notify formats a booking record into plain-text and HTML bodies and
// dispatches them.
func (s *Service) Notify(ctx context.Context, rec domain.BookingRecord) error {
	subject := fmt.Sprintf("New Booking: %s - %s", strings.ToUpper(string(rec.TripType)), rec.Date)
	return s.Send(ctx, subject, formatText(rec), formatHTML(rec))
}

func formatText(rec domain.BookingRecord) string {
	var b strings.Builder
	b.WriteString("New Booking\n\n")
	writeField := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", name, value)
		}
	}

	writeField("Trip Type", string(rec.TripType))
	writeField("Pickup", rec.Pickup)
	writeField("Dropoff", rec.Dropoff)
	writeField("Date", rec.Date)
	writeField("Time", rec.Time)
	writeField("Return Date", rec.ReturnDate)
	if rec.Passengers > 0 {
		writeField("Passengers", fmt.Sprintf("%d (adults %d, children %d, infants %d)",
			rec.Passengers,
			rec.PassengerCounts.Adults,
			rec.PassengerCounts.Children,
			rec.PassengerCounts.Infants,
		))
	}
	if rec.Bags > 0 {
		writeField("Bags", fmt.Sprintf("%d", rec.Bags))
	}
	writeField("Vehicle", rec.VehicleType)
	writeField("Email", rec.Email)

	if len(rec.AddOns) > 0 {
		b.WriteString("\nAdd-ons:\n")
		for _, a := range rec.AddOns {
			fmt.Fprintf(&b, "  - %s x%d\n", a.ID, a.Quantity)
		}
	}
	if rec.TotalCents > 0 {
		fmt.Fprintf(&b, "\nTotal: %s\n", catalog.FormatCents(rec.TotalCents))
	}
	writeField("Payment Status", string(rec.PaymentStatus))
	writeField("Payment Reference", rec.PaymentIntentID)
	return b.String()
}

func formatHTML(rec domain.BookingRecord) string {
	var b strings.Builder
	b.WriteString("<h2>New Booking</h2><table>")
	row := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&b, "<tr><td><b>%s</b></td><td>%s</td></tr>",
				html.EscapeString(name), html.EscapeString(value))
		}
	}

	row("Trip Type", string(rec.TripType))
	row("Pickup", rec.Pickup)
	row("Dropoff", rec.Dropoff)
	row("Date", rec.Date)
	row("Time", rec.Time)
	row("Return Date", rec.ReturnDate)
	if rec.Passengers > 0 {
		row("Passengers", fmt.Sprintf("%d", rec.Passengers))
	}
	if rec.Bags > 0 {
		row("Bags", fmt.Sprintf("%d", rec.Bags))
	}
	row("Vehicle", rec.VehicleType)
	row("Email", rec.Email)
	for _, a := range rec.AddOns {
		row("Add-on", fmt.Sprintf("%s x%d", a.ID, a.Quantity))
	}
	if rec.TotalCents > 0 {
		row("Total", catalog.FormatCents(rec.TotalCents))
	}
	row("Payment Status", string(rec.PaymentStatus))
	row("Payment Reference", rec.PaymentIntentID)
	b.WriteString("</table>")
	return b.String()
}
