// README: Admin bearer-token middleware.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voyage/internal/modules/admin"
)

const adminKey = "voyage.admin"

// AdminAuthenticator resolves a raw bearer token to a live admin account.
type AdminAuthenticator interface {
	Authenticate(ctx context.Context, raw string) (*admin.Admin, error)
}

// AdminAuth rejects requests without a valid "Authorization: Bearer <jwt>"
// header for an admin that still exists.
func AdminAuth(auth AdminAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}
		a, err := auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			if !errors.Is(err, admin.ErrUnauthorized) {
				slog.ErrorContext(c.Request.Context(), "admin authentication failed", "err", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error", "kind": "internal"})
				return
			}
			abortUnauthorized(c)
			return
		}
		c.Set(adminKey, a)
		c.Next()
	}
}

// CallerAdmin returns the admin set by AdminAuth, or nil.
func CallerAdmin(c *gin.Context) *admin.Admin {
	v, ok := c.Get(adminKey)
	if !ok {
		return nil
	}
	a, _ := v.(*admin.Admin)
	return a
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "admin authentication required",
		"kind":    "unauthorized",
	})
}
