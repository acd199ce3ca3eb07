package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tongavip/internal/pkg/response"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/addons", h.ListAddOns)
}

// ListAddOns handles GET /api/addons
func (h *Handler) ListAddOns(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"baseFareCents": h.catalog.BaseFare(),
		"addOns":        h.catalog.AddOns(),
	})
}
