package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeProcessor implements Processor with Stripe payment intents and
// automatic payment methods, the token-based half of the gateway history.
type StripeProcessor struct {
	api *client.API
}

func NewStripeProcessor(secretKey string) *StripeProcessor {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProcessor{api: api}
}

func (p *StripeProcessor) Name() string { return "stripe" }

func (p *StripeProcessor) CreateSession(ctx context.Context, amountCents int64, currency string) (*Session, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	intent, err := p.api.PaymentIntents.New(&stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessorFailed, err)
	}

	return &Session{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  amountCents,
		Currency:     currency,
	}, nil
}

func (p *StripeProcessor) ConfirmSession(ctx context.Context, s *Session) (*Confirmation, error) {
	intent, err := p.api.PaymentIntents.Get(s.ID, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessorFailed, err)
	}
	if intent.Amount != s.AmountCents {
		return nil, fmt.Errorf("%w: amount mismatch intent=%d session=%d",
			ErrProcessorFailed, intent.Amount, s.AmountCents)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return &Confirmation{State: ConfirmationSucceeded, Reference: intent.ID}, nil
	case stripe.PaymentIntentStatusCanceled:
		return &Confirmation{State: ConfirmationFailed, Reason: string(intent.Status)}, nil
	default:
		// requires_payment_method, requires_confirmation, requires_action,
		// processing: the intent has not settled.
		return &Confirmation{State: ConfirmationPending, Reason: string(intent.Status)}, nil
	}
}
