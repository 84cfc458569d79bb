// README: Destination catalog entries and autocomplete results.
package destination

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("destination not found")

const (
	MinQueryLength     = 2
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

type Destination struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Country          string    `json:"country"`
	City             *string   `json:"city"`
	Description      *string   `json:"description"`
	ImageURL         *string   `json:"imageUrl"`
	CreatedAt        time.Time `json:"createdAt"`
	TravelPlansCount int       `json:"travelPlansCount"`
}

// Label formats the destination for autocomplete: "Name, City, Country",
// without the city when it is unknown.
func (d Destination) Label() string {
	if d.City != nil && *d.City != "" {
		return d.Name + ", " + *d.City + ", " + d.Country
	}
	return d.Name + ", " + d.Country
}

type ListFilter struct {
	Search  string
	Country string
}

type SearchResult struct {
	ID               string  `json:"id"`
	Label            string  `json:"label"`
	Name             string  `json:"name"`
	City             *string `json:"city"`
	Country          string  `json:"country"`
	Description      *string `json:"description"`
	ImageURL         *string `json:"imageUrl"`
	TravelPlansCount int     `json:"travelPlansCount"`
}
