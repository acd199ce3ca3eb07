package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tongavip/internal/domain"
	"tongavip/internal/modules/catalog"
	"tongavip/internal/modules/payment"
)

type MockPayments struct {
	mock.Mock
}

func (m *MockPayments) CreateSessionCents(ctx context.Context, amountCents int64, currency string) (*payment.Session, error) {
	args := m.Called(ctx, amountCents, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Session), args.Error(1)
}

func (m *MockPayments) Confirm(ctx context.Context, session *payment.Session) (*payment.Confirmation, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Confirmation), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Append(ctx context.Context, record domain.BookingRecord) (string, error) {
	args := m.Called(ctx, record)
	return args.String(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, record domain.BookingRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func newTestWizard(t *testing.T) (*Wizard, *MockPayments, *MockStore, *MockNotifier) {
	t.Helper()
	payments := new(MockPayments)
	store := new(MockStore)
	notifier := new(MockNotifier)
	w := New(catalog.Default(), payments, store, notifier, "usd", nil)
	return w, payments, store, notifier
}

// advance fills the required details and moves the wizard into StepExtras.
func advanceToExtras(t *testing.T, w *Wizard) {
	t.Helper()
	require.NoError(t, w.SetDate("2026-09-01"))
	require.NoError(t, w.SetDropoff("Tanoa International Dateline Hotel"))
	require.NoError(t, w.Next(context.Background()))
	require.Equal(t, StepExtras, w.Step())
}

func advanceToPayment(t *testing.T, w *Wizard, payments *MockPayments) {
	t.Helper()
	advanceToExtras(t, w)
	payments.On("CreateSessionCents", mock.Anything, w.Total(), "usd").
		Return(&payment.Session{ID: "pi_1", ClientSecret: "secret"}, nil).Once()
	require.NoError(t, w.Next(context.Background()))
	require.Equal(t, StepPayment, w.Step())
}

func TestWizard_InitialDraft(t *testing.T) {
	w, _, _, _ := newTestWizard(t)

	d := w.Draft()
	assert.Equal(t, StepDetails, w.Step())
	assert.Equal(t, domain.TripOneWay, d.TripType)
	assert.Equal(t, domain.PickupAirport, d.PickupContext)
	assert.Equal(t, domain.AirportName, d.Pickup)
	assert.Equal(t, 1, d.PassengerCounts.Adults)
}

func TestWizard_DetailsGuard(t *testing.T) {
	w, _, _, _ := newTestWizard(t)

	// Missing date and dropoff: transition rejected, no state change.
	err := w.Next(context.Background())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StepDetails, w.Step())

	require.NoError(t, w.SetDate("2026-09-01"))
	err = w.Next(context.Background())
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, w.SetDropoff("Nuku'alofa"))
	assert.NoError(t, w.Next(context.Background()))
	assert.Equal(t, StepExtras, w.Step())
}

func TestWizard_ReturnTripRequiresReturnDate(t *testing.T) {
	w, _, _, _ := newTestWizard(t)

	require.NoError(t, w.SetTripType(domain.TripReturn))
	require.NoError(t, w.SetDate("2026-09-01"))
	require.NoError(t, w.SetDropoff("Nuku'alofa"))

	assert.ErrorIs(t, w.Next(context.Background()), ErrValidation)

	require.NoError(t, w.SetReturnDate("2026-09-08"))
	assert.NoError(t, w.Next(context.Background()))
}

func TestWizard_SwitchingToOneWayClearsReturnDate(t *testing.T) {
	w, _, _, _ := newTestWizard(t)

	require.NoError(t, w.SetTripType(domain.TripReturn))
	require.NoError(t, w.SetReturnDate("2026-09-08"))
	require.NoError(t, w.SetTripType(domain.TripOneWay))

	assert.Empty(t, w.Draft().ReturnDate)
}

func TestWizard_PickupContextSwap(t *testing.T) {
	w, _, _, _ := newTestWizard(t)

	// Airport context locks pickup.
	assert.ErrorIs(t, w.SetPickup("somewhere"), ErrLockedField)

	require.NoError(t, w.SetPickupContext(domain.PickupHotel))
	d := w.Draft()
	assert.Empty(t, d.Pickup)
	assert.Equal(t, domain.AirportName, d.Dropoff)

	// Hotel context locks dropoff, pickup becomes editable.
	assert.ErrorIs(t, w.SetDropoff("somewhere"), ErrLockedField)
	require.NoError(t, w.SetPickup("Tanoa Hotel"))

	// Toggling converges: the newly locked field holds the airport, the
	// previously locked one is cleared, never left holding the airport string.
	for i := 0; i < 3; i++ {
		require.NoError(t, w.SetPickupContext(domain.PickupAirport))
		require.NoError(t, w.SetPickupContext(domain.PickupHotel))
	}
	d = w.Draft()
	assert.Equal(t, domain.AirportName, d.Dropoff)
	assert.NotEqual(t, domain.AirportName, d.Pickup)

	// Re-selecting the current context is a no-op beyond the first switch.
	require.NoError(t, w.SetPickupContext(domain.PickupAirport))
	before := w.Draft()
	require.NoError(t, w.SetPickupContext(domain.PickupAirport))
	d = w.Draft()
	assert.Equal(t, before, d)
	assert.Equal(t, domain.AirportName, d.Pickup)
	assert.NotEqual(t, domain.AirportName, d.Dropoff)
}

func TestWizard_AdultsNeverBelowOne(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	advanceToExtras(t, w)

	require.NoError(t, w.AdjustPassengers(Adults, 3))
	assert.Equal(t, 4, w.Draft().PassengerCounts.Adults)

	for i := 0; i < 10; i++ {
		require.NoError(t, w.AdjustPassengers(Adults, -1))
	}
	assert.Equal(t, 1, w.Draft().PassengerCounts.Adults)
}

func TestWizard_CountsNeverNegative(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	advanceToExtras(t, w)

	require.NoError(t, w.AdjustPassengers(Children, -5))
	require.NoError(t, w.AdjustPassengers(Infants, -5))
	require.NoError(t, w.AdjustBags(-5))

	d := w.Draft()
	assert.Equal(t, 0, d.PassengerCounts.Children)
	assert.Equal(t, 0, d.PassengerCounts.Infants)
	assert.Equal(t, 0, d.Bags)
}

func TestWizard_AddOnRoundTrip(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	advanceToExtras(t, w)

	require.NoError(t, w.AddAddOn("lei"))
	require.NoError(t, w.AddAddOn("car-seat"))
	require.NoError(t, w.AddAddOn("car-seat"))

	assert.Equal(t, int64(15480), w.Total())
	afterAdd := w.Draft()
	assert.Equal(t, 2, afterAdd.AddOnQuantity("car-seat"))

	// Removing to zero deletes the entry; it is never stored at quantity 0.
	require.NoError(t, w.RemoveAddOn("lei"))
	afterRemove := w.Draft()
	assert.Equal(t, 0, afterRemove.AddOnQuantity("lei"))
	for _, a := range w.Draft().AddOns {
		assert.NotEqual(t, "lei", a.ID)
	}

	require.NoError(t, w.RemoveAddOn("car-seat"))
	require.NoError(t, w.RemoveAddOn("car-seat"))
	assert.Empty(t, w.Draft().AddOns)
	assert.Equal(t, int64(5000), w.Total())

	// Removing an absent add-on is a no-op.
	assert.NoError(t, w.RemoveAddOn("lei"))
}

func TestWizard_UnknownAddOnRejected(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	advanceToExtras(t, w)

	assert.ErrorIs(t, w.AddAddOn("jetpack"), ErrUnknownAddOn)
}

func TestWizard_ExtrasEditingOnlyInExtras(t *testing.T) {
	w, payments, _, _ := newTestWizard(t)

	assert.ErrorIs(t, w.AdjustPassengers(Adults, 1), ErrWrongStep)
	assert.ErrorIs(t, w.AddAddOn("lei"), ErrWrongStep)
	assert.ErrorIs(t, w.AdjustBags(1), ErrWrongStep)

	advanceToPayment(t, w, payments)
	assert.ErrorIs(t, w.AdjustPassengers(Adults, 1), ErrWrongStep)
	assert.ErrorIs(t, w.AddAddOn("lei"), ErrWrongStep)
}

func TestWizard_SessionCreationFailureStaysInExtras(t *testing.T) {
	w, payments, _, _ := newTestWizard(t)
	advanceToExtras(t, w)

	payments.On("CreateSessionCents", mock.Anything, mock.Anything, "usd").
		Return(nil, payment.ErrProcessorFailed).Once()

	err := w.Next(context.Background())
	assert.ErrorIs(t, err, payment.ErrProcessorFailed)
	assert.Equal(t, StepExtras, w.Step())
	assert.Nil(t, w.Session())
}

func TestWizard_BackFromPaymentDiscardsSession(t *testing.T) {
	w, payments, _, _ := newTestWizard(t)
	advanceToPayment(t, w, payments)
	require.NotNil(t, w.Session())

	require.NoError(t, w.Back())
	assert.Equal(t, StepExtras, w.Step())
	assert.Nil(t, w.Session())

	// A second forward transition creates a fresh session.
	payments.On("CreateSessionCents", mock.Anything, w.Total(), "usd").
		Return(&payment.Session{ID: "pi_2"}, nil).Once()
	require.NoError(t, w.Next(context.Background()))
	assert.Equal(t, "pi_2", w.Session().ID)
}

func TestWizard_BackFromDetailsRejected(t *testing.T) {
	w, _, _, _ := newTestWizard(t)
	assert.ErrorIs(t, w.Back(), ErrWrongStep)
}

func TestWizard_FailedConfirmationLeavesStateUnchanged(t *testing.T) {
	w, payments, store, notifier := newTestWizard(t)
	advanceToPayment(t, w, payments)
	draftBefore := w.Draft()

	payments.On("Confirm", mock.Anything, mock.Anything).
		Return(nil, payment.ErrPaymentFailed).Once()

	err := w.ConfirmPayment(context.Background())
	assert.ErrorIs(t, err, payment.ErrPaymentFailed)
	assert.Equal(t, StepPayment, w.Step())
	assert.NotNil(t, w.Session())
	assert.Equal(t, draftBefore, w.Draft())
	store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)

	// Re-submission with the same session is allowed.
	payments.On("Confirm", mock.Anything, mock.Anything).
		Return(&payment.Confirmation{State: payment.ConfirmationSucceeded, Reference: "pi_1"}, nil).Once()
	store.On("Append", mock.Anything, mock.Anything).Return("1", nil).Once()
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()
	assert.NoError(t, w.ConfirmPayment(context.Background()))
	assert.Equal(t, StepConfirmed, w.Step())
}

func TestWizard_ConfirmPersistsThenNotifies(t *testing.T) {
	w, payments, store, notifier := newTestWizard(t)
	advanceToExtras(t, w)
	require.NoError(t, w.AddAddOn("lei"))

	payments.On("CreateSessionCents", mock.Anything, int64(9280), "usd").
		Return(&payment.Session{ID: "pi_1"}, nil).Once()
	require.NoError(t, w.Next(context.Background()))

	payments.On("Confirm", mock.Anything, mock.Anything).
		Return(&payment.Confirmation{State: payment.ConfirmationSucceeded, Reference: "pi_1"}, nil).Once()

	var persisted domain.BookingRecord
	store.On("Append", mock.Anything, mock.MatchedBy(func(r domain.BookingRecord) bool {
		persisted = r
		return true
	})).Return("1700000000000", nil).Once()
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, w.ConfirmPayment(context.Background()))

	assert.Equal(t, StepConfirmed, w.Step())
	assert.Nil(t, w.Session())
	assert.Equal(t, domain.PaymentPaid, persisted.PaymentStatus)
	assert.Equal(t, "pi_1", persisted.PaymentIntentID)
	assert.Equal(t, int64(9280), persisted.TotalCents)
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestWizard_StoreFailureDoesNotFailConfirmation(t *testing.T) {
	w, payments, store, notifier := newTestWizard(t)
	advanceToPayment(t, w, payments)

	payments.On("Confirm", mock.Anything, mock.Anything).
		Return(&payment.Confirmation{State: payment.ConfirmationSucceeded, Reference: "pi_1"}, nil).Once()
	store.On("Append", mock.Anything, mock.Anything).
		Return("", errors.New("disk full")).Once()
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()

	// The customer has paid: persistence failure is logged, not surfaced.
	assert.NoError(t, w.ConfirmPayment(context.Background()))
	assert.Equal(t, StepConfirmed, w.Step())
}

func TestWizard_NotifyFailureReportedAfterConfirmation(t *testing.T) {
	w, payments, store, notifier := newTestWizard(t)
	advanceToPayment(t, w, payments)

	payments.On("Confirm", mock.Anything, mock.Anything).
		Return(&payment.Confirmation{State: payment.ConfirmationSucceeded, Reference: "pi_1"}, nil).Once()
	store.On("Append", mock.Anything, mock.Anything).Return("1", nil).Once()
	notifier.On("Notify", mock.Anything, mock.Anything).
		Return(errors.New("smtp down")).Once()

	err := w.ConfirmPayment(context.Background())
	assert.ErrorIs(t, err, ErrNotifyFailed)
	// The payment went through, so the wizard is confirmed regardless.
	assert.Equal(t, StepConfirmed, w.Step())
}

func TestWizard_Reset(t *testing.T) {
	w, payments, store, notifier := newTestWizard(t)
	advanceToPayment(t, w, payments)

	payments.On("Confirm", mock.Anything, mock.Anything).
		Return(&payment.Confirmation{State: payment.ConfirmationSucceeded, Reference: "pi_1"}, nil).Once()
	store.On("Append", mock.Anything, mock.Anything).Return("1", nil).Once()
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, w.ConfirmPayment(context.Background()))

	w.Reset()

	assert.Equal(t, StepDetails, w.Step())
	assert.Nil(t, w.Session())
	assert.Equal(t, domain.NewBookingDraft(), w.Draft())
}
