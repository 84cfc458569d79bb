package travelplan

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaValidateOK(t *testing.T) {
	d := 5.0
	c := Criteria{
		DestinationID:      "paris-1",
		Duration:           3,
		StartDate:          "2025-05-01",
		EndDate:            "2025-05-03",
		TravelType:         "romantique",
		Theme:              "culture",
		RestaurantType:     []string{"local", "vegan"},
		DietaryPreferences: []string{"halal"},
		Transport:          []string{"marche"},
		PreferredTime:      []string{"matin"},
		WeatherPreference:  "ensoleille",
		MaxDistance:        &d,
	}
	assert.NoError(t, c.Validate())
}

func TestCriteriaValidateEnumeratesViolations(t *testing.T) {
	d := -1.0
	c := Criteria{
		Duration:       31,
		StartDate:      "2025-05-10",
		EndDate:        "2025-05-01",
		Theme:          "shopping",
		RestaurantType: []string{"local", "fast-food"},
		MaxDistance:    &d,
	}
	err := c.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	fields := map[string]bool{}
	for _, v := range verr.Violations {
		fields[v.Field] = true
	}
	for _, f := range []string{"destinationId", "duration", "endDate", "theme", "restaurantType[1]", "maxDistance"} {
		assert.True(t, fields[f], "missing violation for %s", f)
	}
	assert.Len(t, verr.Violations, 6)
}

func TestCriteriaValidateDurationBounds(t *testing.T) {
	for _, tc := range []struct {
		duration int
		ok       bool
	}{{0, false}, {1, true}, {30, true}, {31, false}} {
		err := Criteria{DestinationID: "x", Duration: tc.duration}.Validate()
		assert.Equal(t, tc.ok, err == nil, "duration %d", tc.duration)
	}
}

func TestCriteriaValidateBadDate(t *testing.T) {
	err := Criteria{DestinationID: "x", Duration: 2, StartDate: "01/05/2025"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "startDate")
}

func TestCriteriaValidateMessages(t *testing.T) {
	d := 0.0
	err := Criteria{
		DestinationID: "   ",
		Duration:      45,
		StartDate:     "2025-06-02",
		EndDate:       "2025-06-01",
		MealBudget:    "enorme",
		Transport:     []string{"marche", "teleporteur"},
		MaxDistance:   &d,
	}.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	got := map[string]string{}
	for _, v := range verr.Violations {
		got[v.Field] = v.Message
	}
	assert.Equal(t, map[string]string{
		"destinationId": "required",
		"duration":      "must be between 1 and 30",
		"endDate":       "must not be before startDate",
		"mealBudget":    "must be one of petit, moyen, eleve",
		"transport[1]":  "must be one of velo, voiture, marche, transports-communs",
		"maxDistance":   "must be positive",
	}, got)
}

func TestCriteriaValidateDateOrderNeedsBothDates(t *testing.T) {
	assert.NoError(t, Criteria{DestinationID: "x", Duration: 2, EndDate: "2025-01-01"}.Validate())
	assert.NoError(t, Criteria{DestinationID: "x", Duration: 2, StartDate: "2025-01-01", EndDate: "2025-01-01"}.Validate())

	err := Criteria{DestinationID: "x", Duration: 2, StartDate: "2025-13-40", EndDate: "2025-01-01"}.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "startDate", verr.Violations[0].Field)
}

func TestCriteriaEnumTagsMatchOptionLists(t *testing.T) {
	lists := map[string][]string{
		"TravelType":         TravelTypes,
		"Theme":              Themes,
		"ActivityIntensity":  ActivityIntensities,
		"ActivityBudget":     ActivityBudgets,
		"RestaurantType":     RestaurantTypes,
		"MealBudget":         MealBudgets,
		"DietaryPreferences": DietaryPreferences,
		"RestaurantAmbiance": RestaurantAmbiances,
		"Transport":          TransportModes,
		"PreferredTime":      PreferredTimes,
		"WeatherPreference":  WeatherPreferences,
	}
	typ := reflect.TypeOf(Criteria{})
	for name, want := range lists {
		f, ok := typ.FieldByName(name)
		require.True(t, ok, name)
		_, opts, found := strings.Cut(f.Tag.Get("validate"), "oneof=")
		require.True(t, found, name)
		assert.Equal(t, want, strings.Fields(opts), name)
	}
}

func TestHasRankingHints(t *testing.T) {
	assert.False(t, Criteria{DestinationID: "x", Duration: 2, TravelType: "solo"}.HasRankingHints())
	assert.True(t, Criteria{Locale: "en"}.HasRankingHints())
	assert.True(t, Criteria{Budget: "moyen"}.HasRankingHints())
}
