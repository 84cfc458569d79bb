package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/modules/aiusage"
	"voyage/internal/types"
)

// QuotaConsumer deducts one AI call from an admin's monthly allowance.
type QuotaConsumer interface {
	Consume(ctx context.Context, adminID types.ID) error
}

// AIQuota must run after AdminAuth. A nil consumer disables metering.
func AIQuota(q QuotaConsumer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if q == nil {
			c.Next()
			return
		}
		a := CallerAdmin(c)
		if a == nil {
			abortUnauthorized(c)
			return
		}
		if err := q.Consume(c.Request.Context(), a.ID); err != nil {
			if errors.Is(err, aiusage.ErrQuotaExceeded) {
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
					"success": false,
					"error":   err.Error(),
					"kind":    "quota_exceeded",
				})
				return
			}
			slog.ErrorContext(c.Request.Context(), "ai quota check failed", "adminId", a.ID, "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error", "kind": "internal"})
			return
		}
		c.Next()
	}
}
