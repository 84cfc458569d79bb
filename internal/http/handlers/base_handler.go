// README: Base handler utilities (response envelope, error mapping).
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voyage/internal/ai"
	"voyage/internal/itinerary"
	"voyage/internal/modules/admin"
	"voyage/internal/modules/catalog"
	"voyage/internal/modules/destination"
	"voyage/internal/modules/feedback"
	"voyage/internal/modules/seo"
	"voyage/internal/modules/travelplan"
	"voyage/internal/service"
)

// Error kinds reported in the "kind" field of failed responses.
const (
	KindBadRequest    = "bad_request"
	KindValidation    = "validation"
	KindNotFound      = "not_found"
	KindUnauthorized  = "unauthorized"
	KindConflict      = "conflict"
	KindConfiguration = "configuration"
	KindProvider      = "provider"
	KindMalformed     = "malformed_response"
	KindTimeout       = "timeout"
	KindInternal      = "internal"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Details any    `json:"details,omitempty"`
}

func writeData(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func writeError(c *gin.Context, status int, kind, msg string) {
	c.JSON(status, envelope{Success: false, Error: msg, Kind: kind})
}

func writeInvalidJSON(c *gin.Context) {
	writeError(c, http.StatusBadRequest, KindBadRequest, "invalid json")
}

// writeServiceError maps domain errors onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	var (
		verr *travelplan.ValidationError
		cerr *ai.ConfigurationError
		perr *ai.ProviderError
		merr *itinerary.MalformedResponseError
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(c.Request.Context().Err(), context.DeadlineExceeded):
		writeError(c, http.StatusGatewayTimeout, KindTimeout, "request timed out")
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, envelope{Success: false, Error: "invalid request", Kind: KindValidation, Details: verr.Violations})
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, feedback.ErrInvalid),
		errors.Is(err, seo.ErrInvalid),
		errors.Is(err, admin.ErrInvalid),
		errors.Is(err, catalog.ErrDestinationRequired):
		writeError(c, http.StatusBadRequest, KindValidation, err.Error())
	case errors.Is(err, travelplan.ErrNotFound),
		errors.Is(err, feedback.ErrPlanNotFound),
		errors.Is(err, destination.ErrNotFound),
		errors.Is(err, seo.ErrNotFound):
		writeError(c, http.StatusNotFound, KindNotFound, err.Error())
	case errors.Is(err, admin.ErrInvalidCredentials), errors.Is(err, admin.ErrUnauthorized):
		writeError(c, http.StatusUnauthorized, KindUnauthorized, err.Error())
	case errors.Is(err, seo.ErrSlugTaken), errors.Is(err, admin.ErrEmailTaken):
		writeError(c, http.StatusConflict, KindConflict, err.Error())
	case errors.As(err, &cerr):
		writeError(c, http.StatusServiceUnavailable, KindConfiguration, cerr.Error())
	case errors.As(err, &perr):
		writeError(c, http.StatusBadGateway, KindProvider, perr.Error())
	case errors.As(err, &merr):
		writeError(c, http.StatusBadGateway, KindMalformed, merr.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "err", err)
		writeError(c, http.StatusInternalServerError, KindInternal, "internal error")
	}
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
