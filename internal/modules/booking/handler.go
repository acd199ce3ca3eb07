package booking

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

// RegisterPublicRoutes registers the submission endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/send-email", h.Submit)
}

// RegisterAdminRoutes registers the listing and deletion endpoints; the
// caller mounts them behind the admin token guard.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.DELETE("/bookings/:id", h.Delete)
}

// Submit handles POST /api/send-email
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "text is required")
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), req); err != nil {
		h.log.Errorw("booking submission failed", "error", err)
		response.Fail(c, http.StatusInternalServerError, "Failed to send email")
		return
	}
	response.Message(c, http.StatusOK, "Email sent successfully")
}

// List handles GET /api/bookings
func (h *Handler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to list bookings", "error", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, records)
}

// Delete handles DELETE /api/bookings/:id
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		response.Fail(c, http.StatusNotFound, "Booking not found")
	case err != nil:
		h.log.Errorw("failed to delete booking", "booking_id", c.Param("id"), "error", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete booking")
	default:
		response.Message(c, http.StatusOK, "Booking deleted")
	}
}
