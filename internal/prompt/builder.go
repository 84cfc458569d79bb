// README: Deterministic prompt assembly from generation criteria.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"voyage/internal/modules/travelplan"
)

// itinerarySchema is the JSON shape requested from the model.
const itinerarySchema = `{
  "title": "...",
  "days": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "activities": [
        {"name": "...", "time": "09:00", "duration": "2h", "description": "...", "location": "..."}
      ],
      "restaurants": [
        {"name": "...", "time": "12:30", "cuisine": "...", "priceRange": "€€"}
      ]
    }
  ],
  "budget": "...",
  "season": "...",
  "tips": ["...", "..."]
}`

type Destination struct {
	Name    string
	Country string
}

type Prompt struct {
	System string
	User   string
	Locale string
}

// Build assembles the system and user prompts. Equal inputs always yield
// byte-identical prompts; the response cache key depends on it.
func Build(c travelplan.Criteria, dest Destination, locale string) Prompt {
	loc := ResolveLocale(locale)
	ph := locales[loc]
	respondIn := fmt.Sprintf(ph.respondIn, ph.language)

	var b strings.Builder
	fmt.Fprintf(&b, ph.base, c.Duration, dest.Name, dest.Country)
	b.WriteString(respondIn)

	if c.StartDate != "" {
		fmt.Fprintf(&b, ph.datesFrom, c.StartDate)
		if c.EndDate != "" {
			fmt.Fprintf(&b, ph.datesTo, c.EndDate)
		}
		b.WriteString(".")
	}
	if c.TravelType != "" {
		label, ok := ph.travelTypes[c.TravelType]
		if !ok {
			label = c.TravelType
		}
		fmt.Fprintf(&b, ph.travelType, label)
	}
	clause(&b, ph.theme, c.Theme)
	clause(&b, ph.style, c.TravelStyle)
	clause(&b, ph.budget, c.Budget)
	listClause(&b, ph.preferred, c.PreferredActivities)
	listClause(&b, ph.avoid, c.ActivitiesToAvoid)
	clause(&b, ph.intensity, c.ActivityIntensity)
	clause(&b, ph.actBudget, c.ActivityBudget)
	if a := c.Accessibility; a != nil {
		var needs []string
		if a.Handicap {
			needs = append(needs, ph.handicap)
		}
		if a.Children {
			needs = append(needs, ph.children)
		}
		if a.Pets {
			needs = append(needs, ph.pets)
		}
		listClause(&b, ph.access, needs)
	}
	listClause(&b, ph.restType, c.RestaurantType)
	clause(&b, ph.mealBudget, c.MealBudget)
	listClause(&b, ph.dietary, c.DietaryPreferences)
	clause(&b, ph.ambiance, c.RestaurantAmbiance)
	listClause(&b, ph.transport, c.Transport)
	if c.MaxDistance != nil && *c.MaxDistance > 0 {
		fmt.Fprintf(&b, ph.maxDistance, strconv.FormatFloat(*c.MaxDistance, 'f', -1, 64))
	}
	listClause(&b, ph.prefTime, c.PreferredTime)
	clause(&b, ph.weather, c.WeatherPreference)
	b.WriteString(ph.closing)

	system := ph.expert + "\n" + itinerarySchema + "\n" + strings.TrimSpace(respondIn)

	return Prompt{System: system, User: b.String(), Locale: loc}
}

func clause(b *strings.Builder, format, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, format, value)
}

func listClause(b *strings.Builder, format string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, format, strings.Join(values, ", "))
}
