// README: Activity and restaurant suggestion handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"voyage/internal/modules/catalog"
)

type CatalogService interface {
	Activities(ctx context.Context, f catalog.ActivityFilter) ([]catalog.Activity, error)
	Restaurants(ctx context.Context, f catalog.RestaurantFilter) ([]catalog.Restaurant, error)
}

type CatalogHandler struct {
	catalog CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// Activities handles GET /api/activities.
func (h *CatalogHandler) Activities(c *gin.Context) {
	out, err := h.catalog.Activities(c.Request.Context(), catalog.ActivityFilter{
		DestinationID: c.Query("destinationId"),
		Type:          c.Query("type"),
		Season:        c.Query("season"),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, out)
}

// Restaurants handles GET /api/restaurants.
func (h *CatalogHandler) Restaurants(c *gin.Context) {
	out, err := h.catalog.Restaurants(c.Request.Context(), catalog.RestaurantFilter{
		DestinationID: c.Query("destinationId"),
		Cuisine:       c.Query("cuisine"),
		PriceRange:    c.Query("priceRange"),
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, out)
}
