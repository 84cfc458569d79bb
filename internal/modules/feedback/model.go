// README: Visitor feedback on a generated travel plan.
package feedback

import (
	"errors"
	"time"

	"voyage/internal/types"
)

var (
	ErrPlanNotFound = errors.New("travel plan not found")
	ErrInvalid      = errors.New("invalid feedback")
)

const (
	MinRating = 1
	MaxRating = 5
)

type Feedback struct {
	ID           types.ID  `json:"id"`
	TravelPlanID types.ID  `json:"travelPlanId"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	Email        *string   `json:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateCommand struct {
	TravelPlanID string
	Rating       int
	Comment      string
	Email        string
}
