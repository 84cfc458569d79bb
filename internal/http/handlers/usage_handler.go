package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/http/middleware"
	"voyage/internal/modules/aiusage"
	"voyage/internal/types"
)

// UsageService meters and reports admin AI calls.
type UsageService interface {
	middleware.QuotaConsumer
	Remaining(ctx context.Context, adminID types.ID) (aiusage.Usage, error)
}

type UsageHandler struct {
	usage UsageService
}

func NewUsageHandler(usage UsageService) *UsageHandler {
	return &UsageHandler{usage: usage}
}

// Get handles GET /api/admin/ai-usage.
func (h *UsageHandler) Get(c *gin.Context) {
	a := middleware.CallerAdmin(c)
	if a == nil {
		writeError(c, http.StatusUnauthorized, "unauthorized", "admin authentication required")
		return
	}
	u, err := h.usage.Remaining(c.Request.Context(), a.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, u)
}
