package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tongavip/internal/pkg/response"
)

type Handler struct {
	service *Service
	log     *zap.SugaredLogger
}

func NewHandler(service *Service, log *zap.SugaredLogger) *Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create-payment-intent", h.CreatePaymentIntent)
	rg.POST("/create-anz-session", h.CreateANZSession)
}

// CreatePaymentIntent handles POST /api/create-payment-intent for the
// Stripe-backed deployment. The alternate provider's route answers 503 so
// both documented shapes stay reachable behind one selection mechanism.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	if h.service.Provider() != "stripe" {
		response.Fail(c, http.StatusServiceUnavailable, "Stripe is not configured on the server.")
		return
	}

	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "amount is required")
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), req.Amount, req.Currency)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreatePaymentIntentResponse{ClientSecret: session.ClientSecret})
}

// CreateANZSession handles POST /api/create-anz-session for the hosted
// checkout deployment.
func (h *Handler) CreateANZSession(c *gin.Context) {
	if h.service.Provider() != "anz" {
		response.Fail(c, http.StatusServiceUnavailable, "ANZ gateway is not configured on the server.")
		return
	}

	var req CreateANZSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "amount is required")
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), req.Amount, req.Currency)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	orderID := session.OrderID
	if req.OrderID != "" {
		orderID = req.OrderID
	}
	c.JSON(http.StatusOK, CreateANZSessionResponse{
		SessionID:        session.ID,
		SuccessIndicator: session.ClientSecret,
		OrderID:          orderID,
	})
}

func (h *Handler) respondCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		response.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotConfigured):
		response.Fail(c, http.StatusServiceUnavailable, "payment processor is not configured")
	default:
		// Processor details stay in the server log; the client gets a
		// generic retry prompt.
		h.log.Errorw("payment session creation failed", "error", err)
		response.Fail(c, http.StatusBadGateway, "Payment failed, please try again.")
	}
}
