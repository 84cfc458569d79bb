// README: Persisted travel plan aggregate and example listing types.
package travelplan

import (
	"encoding/json"
	"errors"
	"time"

	"voyage/internal/itinerary"
	"voyage/internal/types"
)

var ErrNotFound = errors.New("travel plan not found")

const (
	// MatchCandidates bounds the reuse ranking pass.
	MatchCandidates = 10

	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type TravelPlan struct {
	ID            types.ID
	Title         string
	DestinationID string
	Program       itinerary.Document
	Duration      int
	Budget        *string
	Season        *string
	Locale        string
	IsPublished   bool
	IsExample     bool
	CreatedAt     time.Time
}

// CreateCommand carries the fields of a freshly generated plan.
type CreateCommand struct {
	Title         string
	DestinationID string
	Program       itinerary.Document
	Duration      int
	Budget        *string
	Season        *string
	Locale        string
}

type ExampleFilter struct {
	DestinationID string
	Limit         int
	Offset        int
}

// Normalize applies the pagination defaults and bounds.
func (f ExampleFilter) Normalize() ExampleFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

type DestinationSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	City    *string `json:"city"`
}

type ExampleSummary struct {
	FirstDay json.RawMessage `json:"firstDay"`
}

type Example struct {
	ID          types.ID           `json:"id"`
	Title       string             `json:"title"`
	Duration    int                `json:"duration"`
	Budget      *string            `json:"budget"`
	Season      *string            `json:"season"`
	Destination DestinationSummary `json:"destination"`
	CreatedAt   time.Time          `json:"createdAt"`
	Summary     *ExampleSummary    `json:"summary"`
}

type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

type ExamplePage struct {
	Examples   []Example  `json:"examples"`
	Pagination Pagination `json:"pagination"`
}
