// README: Reference activities and restaurants attached to a destination.
package catalog

import (
	"errors"
	"time"
)

var ErrDestinationRequired = errors.New("destinationId is required")

type Activity struct {
	ID            string    `json:"id"`
	DestinationID string    `json:"destinationId"`
	Name          string    `json:"name"`
	Type          *string   `json:"type"`
	Duration      *string   `json:"duration"`
	Price         *string   `json:"price"`
	Season        *string   `json:"season"`
	Description   *string   `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Restaurant struct {
	ID            string    `json:"id"`
	DestinationID string    `json:"destinationId"`
	Name          string    `json:"name"`
	Cuisine       *string   `json:"cuisine"`
	PriceRange    *string   `json:"priceRange"`
	Address       *string   `json:"address"`
	Rating        *float64  `json:"rating"`
	Description   *string   `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ActivityFilter matches type and season as case-insensitive substrings.
type ActivityFilter struct {
	DestinationID string
	Type          string
	Season        string
}

// RestaurantFilter matches cuisine as a case-insensitive substring and
// priceRange exactly.
type RestaurantFilter struct {
	DestinationID string
	Cuisine       string
	PriceRange    string
}
