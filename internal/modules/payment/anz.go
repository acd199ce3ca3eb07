package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ANZProcessor implements Processor against the Mastercard-hosted ANZ eGate
// checkout, the hosted-checkout half of the gateway history. The gateway has
// no Go SDK; requests go straight to its REST surface.
type ANZProcessor struct {
	merchantID  string
	apiPassword string
	baseURL     string
	httpClient  *http.Client
	now         func() time.Time
}

func NewANZProcessor(merchantID, apiPassword, baseURL string) *ANZProcessor {
	return &ANZProcessor{
		merchantID:  merchantID,
		apiPassword: apiPassword,
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		now:         time.Now,
	}
}

func (p *ANZProcessor) Name() string { return "anz" }

type anzSessionResponse struct {
	Result           string `json:"result"`
	SuccessIndicator string `json:"successIndicator"`
	Session          struct {
		ID string `json:"id"`
	} `json:"session"`
}

type anzOrderResponse struct {
	Result string `json:"result"`
	Status string `json:"status"`
	ID     string `json:"id"`
}

func (p *ANZProcessor) CreateSession(ctx context.Context, amountCents int64, currency string) (*Session, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	payload := map[string]any{
		"apiOperation": "INITIATE_CHECKOUT",
		"interaction": map[string]any{
			"operation": "PURCHASE",
		},
	}
	body, _ := json.Marshal(payload)

	url := fmt.Sprintf("%s/merchant/%s/session", p.baseURL, p.merchantID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessorFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", p.authHeader())

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessorFailed, err)
	}
	defer resp.Body.Close()

	var out anzSessionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode session response: %v", ErrProcessorFailed, err)
	}
	if resp.StatusCode != http.StatusOK || out.Result != "SUCCESS" {
		return nil, fmt.Errorf("%w: gateway status=%d result=%s", ErrProcessorFailed, resp.StatusCode, out.Result)
	}

	return &Session{
		ID:           out.Session.ID,
		ClientSecret: out.SuccessIndicator,
		OrderID:      fmt.Sprintf("ORDER-%d", p.now().UnixMilli()),
		AmountCents:  amountCents,
		Currency:     currency,
	}, nil
}

func (p *ANZProcessor) ConfirmSession(ctx context.Context, s *Session) (*Confirmation, error) {
	url := fmt.Sprintf("%s/merchant/%s/order/%s", p.baseURL, p.merchantID, s.OrderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessorFailed, err)
	}
	req.Header.Set("Authorization", p.authHeader())

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessorFailed, err)
	}
	defer resp.Body.Close()

	var out anzOrderResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode order response: %v", ErrProcessorFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gateway status=%d", ErrProcessorFailed, resp.StatusCode)
	}

	switch {
	case out.Result == "SUCCESS" && out.Status == "CAPTURED":
		return &Confirmation{State: ConfirmationSucceeded, Reference: s.OrderID}, nil
	case out.Result == "FAILURE":
		return &Confirmation{State: ConfirmationFailed, Reason: out.Status}, nil
	default:
		return &Confirmation{State: ConfirmationPending, Reason: out.Status}, nil
	}
}

func (p *ANZProcessor) authHeader() string {
	credentials := fmt.Sprintf("merchant.%s:%s", p.merchantID, p.apiPassword)
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}
