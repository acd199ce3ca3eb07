package payment

type CreatePaymentIntentRequest struct {
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type CreateANZSessionRequest struct {
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency"`
	OrderID  string `json:"orderId"`
}

type CreateANZSessionResponse struct {
	SessionID        string `json:"sessionId"`
	SuccessIndicator string `json:"successIndicator"`
	OrderID          string `json:"orderId"`
}
