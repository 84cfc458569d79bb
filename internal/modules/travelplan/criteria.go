// README: Generation criteria and their validation rules.
package travelplan

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	MinDuration = 1
	MaxDuration = 30
	dateLayout  = "2006-01-02"
)

type Accessibility struct {
	Handicap bool `json:"handicap,omitempty"`
	Children bool `json:"enfants,omitempty"`
	Pets     bool `json:"animaux,omitempty"`
}

// Criteria describes one generation request. It is used both to build the
// prompt and to rank stored plans for reuse.
type Criteria struct {
	DestinationID string `json:"destinationId" validate:"notblank"`
	Duration      int    `json:"duration" validate:"min=1,max=30"`
	StartDate     string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TravelType    string `json:"travelType,omitempty" validate:"omitempty,oneof=familial romantique entre-amis solo business"`
	Theme         string `json:"theme,omitempty" validate:"omitempty,oneof=culture nature sport gastronomie luxe detente"`
	TravelStyle   string `json:"travelStyle,omitempty"`

	PreferredActivities []string       `json:"preferredActivities,omitempty"`
	ActivitiesToAvoid   []string       `json:"activitiesToAvoid,omitempty"`
	ActivityIntensity   string         `json:"activityIntensity,omitempty" validate:"omitempty,oneof=relax modere intense"`
	ActivityBudget      string         `json:"activityBudget,omitempty" validate:"omitempty,oneof=gratuit economique moyen premium"`
	Accessibility       *Accessibility `json:"accessibility,omitempty"`

	RestaurantType     []string `json:"restaurantType,omitempty" validate:"omitempty,dive,oneof=local international vegan gastronomique street-food"`
	MealBudget         string   `json:"mealBudget,omitempty" validate:"omitempty,oneof=petit moyen eleve"`
	DietaryPreferences []string `json:"dietaryPreferences,omitempty" validate:"omitempty,dive,oneof=vegetarien halal casher sans-gluten sans-lactose"`
	RestaurantAmbiance string   `json:"restaurantAmbiance,omitempty" validate:"omitempty,oneof=familiale romantique animee calme"`

	Transport         []string `json:"transport,omitempty" validate:"omitempty,dive,oneof=velo voiture marche transports-communs"`
	MaxDistance       *float64 `json:"maxDistance,omitempty" validate:"omitempty,gt=0"`
	PreferredTime     []string `json:"preferredTime,omitempty" validate:"omitempty,dive,oneof=matin apres-midi soir journee-complete"`
	WeatherPreference string   `json:"weatherPreference,omitempty" validate:"omitempty,oneof=ensoleille pluie-possible neige"`

	Budget string `json:"budget,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// HasRankingHints reports whether any field the matcher scores on is set.
func (c Criteria) HasRankingHints() bool {
	return c.Locale != "" || c.Theme != "" || c.TravelStyle != "" || c.Budget != ""
}

var (
	TravelTypes         = []string{"familial", "romantique", "entre-amis", "solo", "business"}
	Themes              = []string{"culture", "nature", "sport", "gastronomie", "luxe", "detente"}
	ActivityIntensities = []string{"relax", "modere", "intense"}
	ActivityBudgets     = []string{"gratuit", "economique", "moyen", "premium"}
	RestaurantTypes     = []string{"local", "international", "vegan", "gastronomique", "street-food"}
	MealBudgets         = []string{"petit", "moyen", "eleve"}
	DietaryPreferences  = []string{"vegetarien", "halal", "casher", "sans-gluten", "sans-lactose"}
	RestaurantAmbiances = []string{"familiale", "romantique", "animee", "calme"}
	TransportModes      = []string{"velo", "voiture", "marche", "transports-communs"}
	PreferredTimes      = []string{"matin", "apres-midi", "soir", "journee-complete"}
	WeatherPreferences  = []string{"ensoleille", "pluie-possible", "neige"}
)

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field of a request.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterStructValidation(validateDates, Criteria{})
	return v
}

// validateDates rejects an end date before the start date. Malformed dates
// are already reported by the datetime tag.
func validateDates(sl validator.StructLevel) {
	c := sl.Current().Interface().(Criteria)
	if c.StartDate == "" || c.EndDate == "" {
		return
	}
	start, err := time.Parse(dateLayout, c.StartDate)
	if err != nil {
		return
	}
	end, err := time.Parse(dateLayout, c.EndDate)
	if err != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(c.EndDate, "endDate", "EndDate", "gtefield", "startDate")
	}
}

// Validate returns a *ValidationError enumerating all violations, or nil.
func (c Criteria) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{Field: fe.Field(), Message: violationMessage(fe)})
	}
	return &ValidationError{Violations: violations}
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "required"
	case "min", "max":
		return fmt.Sprintf("must be between %d and %d", MinDuration, MaxDuration)
	case "datetime":
		return "must be a date formatted YYYY-MM-DD"
	case "gtefield":
		return "must not be before " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "must be positive"
	}
	return "is invalid"
}
