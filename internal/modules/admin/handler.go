package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

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
	rg.POST("/login", h.Login)
}

// Login handles POST /api/login. The response shape is the historical
// {success, token} / {success, message} contract.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Password)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		h.log.Infow("admin login rejected", "client_ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
	case err != nil:
		h.log.Errorw("admin login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal error"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
	}
}
