package concierge

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tongavip/internal/pkg/response"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/concierge", h.Chat)
}

// Chat handles POST /api/concierge
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "message is required")
		return
	}

	reply, err := h.service.Respond(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "message is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error")
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
