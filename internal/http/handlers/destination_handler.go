// README: Destination list and autocomplete handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/modules/destination"
)

type DestinationService interface {
	List(ctx context.Context, f destination.ListFilter) ([]destination.Destination, error)
	Search(ctx context.Context, q string, limit int) ([]destination.SearchResult, error)
}

type DestinationHandler struct {
	destinations DestinationService
}

func NewDestinationHandler(svc DestinationService) *DestinationHandler {
	return &DestinationHandler{destinations: svc}
}

// List handles GET /api/destinations.
func (h *DestinationHandler) List(c *gin.Context) {
	out, err := h.destinations.List(c.Request.Context(), destination.ListFilter{
		Search:  c.Query("search"),
		Country: c.Query("country"),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, out)
}

// Search handles GET /api/destinations/search.
func (h *DestinationHandler) Search(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		writeError(c, http.StatusBadRequest, KindValidation, "limit must be an integer")
		return
	}
	out, err := h.destinations.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, out)
}
