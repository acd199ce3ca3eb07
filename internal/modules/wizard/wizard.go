package wizard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tongavip/internal/domain"
	"tongavip/internal/modules/catalog"
	"tongavip/internal/modules/payment"
)

type Step string

const (
	StepDetails   Step = "details"
	StepExtras    Step = "extras"
	StepPayment   Step = "payment"
	StepConfirmed Step = "confirmed"
)

type PassengerKind string

const (
	Adults   PassengerKind = "adults"
	Children PassengerKind = "children"
	Infants  PassengerKind = "infants"
)

// Wizard is the booking flow state machine: Details -> Extras -> Payment ->
// Confirmed, with unconditional backward navigation and a full reset after
// confirmation. One Wizard belongs to one session and is not safe for
// concurrent use; all mutations happen in response to discrete user actions.
type Wizard struct {
	catalog  *catalog.Catalog
	payments PaymentOrchestrator
	store    RecordStore
	notifier Notifier
	currency string
	log      *zap.SugaredLogger

	step    Step
	draft   domain.BookingDraft
	session *payment.Session
}

func New(cat *catalog.Catalog, payments PaymentOrchestrator, store RecordStore, notifier Notifier, currency string, log *zap.SugaredLogger) *Wizard {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Wizard{
		catalog:  cat,
		payments: payments,
		store:    store,
		notifier: notifier,
		currency: currency,
		log:      log,
		step:     StepDetails,
		draft:    domain.NewBookingDraft(),
	}
}

func (w *Wizard) Step() Step { return w.step }

// Draft returns a copy of the in-progress booking.
func (w *Wizard) Draft() domain.BookingDraft { return w.draft }

// Session returns the in-flight payment session, nil outside the payment step.
func (w *Wizard) Session() *payment.Session { return w.session }

// Total is the live running total: base fare plus selected add-ons.
func (w *Wizard) Total() int64 {
	return w.catalog.Total(w.draft.AddOns)
}

// --- trip details (StepDetails only) ---

func (w *Wizard) SetTripType(t domain.TripType) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	w.draft.TripType = t
	if t == domain.TripOneWay {
		w.draft.ReturnDate = ""
	}
	return nil
}

// SetPickupContext locks pickup to the airport or dropoff to the airport. The
// swap is idempotent: repeated toggling always converges on the same draft,
// and a previously locked field is cleared rather than left holding the
// airport string.
func (w *Wizard) SetPickupContext(pc domain.PickupContext) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	switch pc {
	case domain.PickupAirport:
		if w.draft.Dropoff == domain.AirportName {
			w.draft.Dropoff = ""
		}
		w.draft.Pickup = domain.AirportName
	case domain.PickupHotel:
		if w.draft.Pickup == domain.AirportName {
			w.draft.Pickup = ""
		}
		w.draft.Dropoff = domain.AirportName
	default:
		return fmt.Errorf("%w: unknown pickup context %q", ErrValidation, pc)
	}
	w.draft.PickupContext = pc
	return nil
}

func (w *Wizard) SetPickup(v string) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	if w.draft.PickupContext == domain.PickupAirport {
		return ErrLockedField
	}
	w.draft.Pickup = v
	return nil
}

func (w *Wizard) SetDropoff(v string) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	if w.draft.PickupContext == domain.PickupHotel {
		return ErrLockedField
	}
	w.draft.Dropoff = v
	return nil
}

func (w *Wizard) SetDate(v string) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	w.draft.Date = v
	return nil
}

func (w *Wizard) SetTime(v string) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	w.draft.Time = v
	return nil
}

func (w *Wizard) SetReturnDate(v string) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	w.draft.ReturnDate = v
	return nil
}

func (w *Wizard) SetEmail(v string) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	w.draft.Email = v
	return nil
}

func (w *Wizard) SetVehicleType(v string) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	w.draft.VehicleType = v
	return nil
}

// --- passengers, bags and add-ons (StepExtras only) ---

// AdjustPassengers applies a delta to one passenger count. Adults floor at 1
// and the other counts at 0; a decrement past the floor is refused by
// clamping, never by error, matching the form's disabled minus button.
func (w *Wizard) AdjustPassengers(kind PassengerKind, delta int) error {
	if w.step != StepExtras {
		return ErrWrongStep
	}
	c := &w.draft.PassengerCounts
	switch kind {
	case Adults:
		c.Adults = clamp(c.Adults+delta, 1)
	case Children:
		c.Children = clamp(c.Children+delta, 0)
	case Infants:
		c.Infants = clamp(c.Infants+delta, 0)
	default:
		return fmt.Errorf("%w: unknown passenger kind %q", ErrValidation, kind)
	}
	return nil
}

func (w *Wizard) AdjustBags(delta int) error {
	if w.step != StepExtras {
		return ErrWrongStep
	}
	w.draft.Bags = clamp(w.draft.Bags+delta, 0)
	return nil
}

// AddAddOn increments the selected quantity for a catalog add-on.
func (w *Wizard) AddAddOn(id string) error {
	if w.step != StepExtras {
		return ErrWrongStep
	}
	if _, ok := w.catalog.Get(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAddOn, id)
	}
	for i := range w.draft.AddOns {
		if w.draft.AddOns[i].ID == id {
			w.draft.AddOns[i].Quantity++
			return nil
		}
	}
	w.draft.AddOns = append(w.draft.AddOns, domain.SelectedAddOn{ID: id, Quantity: 1})
	return nil
}

// RemoveAddOn decrements the selected quantity; reaching zero removes the
// entry entirely, so a quantity-zero selection is never stored.
func (w *Wizard) RemoveAddOn(id string) error {
	if w.step != StepExtras {
		return ErrWrongStep
	}
	for i := range w.draft.AddOns {
		if w.draft.AddOns[i].ID != id {
			continue
		}
		w.draft.AddOns[i].Quantity--
		if w.draft.AddOns[i].Quantity <= 0 {
			w.draft.AddOns = append(w.draft.AddOns[:i], w.draft.AddOns[i+1:]...)
		}
		return nil
	}
	return nil
}

// --- transitions ---

// Next advances the wizard one step. Details -> Extras is guarded by the
// required trip fields. Extras -> Payment creates the checkout session; on
// processor failure the wizard stays in Extras and the error is surfaced.
func (w *Wizard) Next(ctx context.Context) error {
	switch w.step {
	case StepDetails:
		if err := w.validateDetails(); err != nil {
			return err
		}
		w.step = StepExtras
		return nil
	case StepExtras:
		session, err := w.payments.CreateSessionCents(ctx, w.Total(), w.currency)
		if err != nil {
			return err
		}
		w.session = session
		w.step = StepPayment
		return nil
	default:
		return ErrWrongStep
	}
}

// Back navigates one step backward. Leaving the payment step discards the
// in-flight session; it is never reused.
func (w *Wizard) Back() error {
	switch w.step {
	case StepExtras:
		w.step = StepDetails
		return nil
	case StepPayment:
		w.session = nil
		w.step = StepExtras
		return nil
	default:
		return ErrWrongStep
	}
}

// ConfirmPayment resolves the in-flight session. A failed or pending
// confirmation leaves the step and draft untouched so the user can retry. On
// success the booking is persisted and the notification sent, in that order:
// a store failure is logged only (the customer has been charged), while a
// notification failure is reported to the caller with the wizard already
// confirmed.
func (w *Wizard) ConfirmPayment(ctx context.Context) error {
	if w.step != StepPayment {
		return ErrWrongStep
	}
	if w.session == nil {
		return ErrNoSession
	}

	conf, err := w.payments.Confirm(ctx, w.session)
	if err != nil {
		return err
	}

	record := w.buildRecord(conf.Reference)
	w.step = StepConfirmed
	w.session = nil

	if _, err := w.store.Append(ctx, record); err != nil {
		w.log.Errorw("failed to persist confirmed booking", "error", err)
	}
	if err := w.notifier.Notify(ctx, record); err != nil {
		return fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}
	return nil
}

// Reset returns the wizard to a fresh default draft. The caller invokes it
// once the confirmation display window elapses.
func (w *Wizard) Reset() {
	w.step = StepDetails
	w.draft = domain.NewBookingDraft()
	w.session = nil
}

func (w *Wizard) validateDetails() error {
	d := &w.draft
	if d.Date == "" || d.Pickup == "" || d.Dropoff == "" {
		return fmt.Errorf("%w: date, pickup and dropoff are required", ErrValidation)
	}
	if d.TripType == domain.TripReturn && d.ReturnDate == "" {
		return fmt.Errorf("%w: return date is required for return trips", ErrValidation)
	}
	return nil
}

func (w *Wizard) buildRecord(reference string) domain.BookingRecord {
	d := w.draft
	return domain.BookingRecord{
		PaymentStatus:   domain.PaymentPaid,
		PaymentIntentID: reference,
		TripType:        d.TripType,
		PickupContext:   d.PickupContext,
		Pickup:          d.Pickup,
		Dropoff:         d.Dropoff,
		Date:            d.Date,
		Time:            d.Time,
		ReturnDate:      d.ReturnDate,
		Passengers:      d.PassengerCounts.Total(),
		PassengerCounts: d.PassengerCounts,
		Bags:            d.Bags,
		VehicleType:     d.VehicleType,
		Email:           d.Email,
		AddOns:          append([]domain.SelectedAddOn(nil), d.AddOns...),
		TotalCents:      w.catalog.Total(d.AddOns),
	}
}

func clamp(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
