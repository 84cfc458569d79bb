package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"voyage/internal/modules/travelplan"
)

var paris = Destination{Name: "Paris", Country: "France"}

func fullCriteria() travelplan.Criteria {
	d := 2.5
	return travelplan.Criteria{
		DestinationID:       "paris-1",
		Duration:            3,
		StartDate:           "2025-05-01",
		EndDate:             "2025-05-03",
		TravelType:          "romantique",
		Theme:               "culture",
		TravelStyle:         "slow",
		Budget:              "1000€",
		PreferredActivities: []string{"musées", "balades"},
		ActivitiesToAvoid:   []string{"boîtes de nuit"},
		ActivityIntensity:   "modere",
		ActivityBudget:      "moyen",
		Accessibility:       &travelplan.Accessibility{Handicap: true, Pets: true},
		RestaurantType:      []string{"local"},
		MealBudget:          "moyen",
		DietaryPreferences:  []string{"vegetarien"},
		RestaurantAmbiance:  "calme",
		Transport:           []string{"marche", "transports-communs"},
		MaxDistance:         &d,
		PreferredTime:       []string{"matin"},
		WeatherPreference:   "ensoleille",
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := Build(fullCriteria(), paris, "en")
	b := Build(fullCriteria(), paris, "en")
	assert.Equal(t, a, b)
}

func TestBuildMinimalFrench(t *testing.T) {
	p := Build(travelplan.Criteria{DestinationID: "paris-1", Duration: 3}, paris, "")

	assert.Equal(t, "fr", p.Locale)
	assert.Equal(t,
		"Crée un programme de voyage détaillé de 3 jours pour Paris (France)."+
			" Rédige tous les textes du programme en français."+
			" Inclus des activités variées, des restaurants recommandés, et des conseils pratiques pour chaque jour.",
		p.User)
	assert.True(t, strings.HasPrefix(p.System, "Tu es un expert en planification de voyages."))
	assert.Contains(t, p.System, `"days"`)
	assert.True(t, strings.HasSuffix(p.System, "Rédige tous les textes du programme en français."))
}

func TestBuildClauseOrder(t *testing.T) {
	p := Build(fullCriteria(), paris, "fr")

	ordered := []string{
		"Rédige tous les textes",
		"Dates: du 2025-05-01 au 2025-05-03.",
		"Type de voyage: voyage romantique.",
		"Thème: culture.",
		"Style de voyage: slow.",
		"Budget global: 1000€.",
		"Activités préférées: musées, balades.",
		"Activités à éviter: boîtes de nuit.",
		"Niveau d'intensité: modere.",
		"Budget par activité: moyen.",
		"Accessibilité: accessibilité handicap, animaux acceptés.",
		"Type de restaurants: local.",
		"Budget par repas: moyen.",
		"Préférences alimentaires: vegetarien.",
		"Ambiance restaurant: calme.",
		"Transport préféré: marche, transports-communs.",
		"Distance maximale entre activités: 2.5km.",
		"Horaires préférés: matin.",
		"Météo préférée: ensoleille.",
		"Inclus des activités variées",
	}
	last := -1
	for _, frag := range ordered {
		idx := strings.Index(p.User, frag)
		if assert.GreaterOrEqual(t, idx, 0, "missing %q", frag) {
			assert.Greater(t, idx, last, "%q out of order", frag)
			last = idx
		}
	}
}

func TestBuildLocalizedAndFallback(t *testing.T) {
	c := travelplan.Criteria{DestinationID: "paris-1", Duration: 2, TravelType: "solo"}

	en := Build(c, paris, "en-GB")
	assert.Equal(t, "en", en.Locale)
	assert.Contains(t, en.User, "Create a detailed 2-day travel itinerary for Paris (France).")
	assert.Contains(t, en.User, "Write every text field of the itinerary in English.")
	assert.Contains(t, en.User, "Trip type: solo trip.")

	for locale, want := range map[string]string{
		"de":    "Erstelle einen detaillierten 2-tägigen Reiseplan für Paris (France).",
		"it-IT": "Crea un itinerario di viaggio dettagliato di 2 giorni per Paris (France).",
		"PT":    "Crie um roteiro de viagem detalhado de 2 dias para Paris (France).",
	} {
		p := Build(c, paris, locale)
		assert.NotEqual(t, "fr", p.Locale, locale)
		assert.Contains(t, p.User, want, locale)
	}
	de := Build(c, paris, "de")
	assert.Contains(t, de.User, "Reiseart: Alleinreise.")
	assert.Contains(t, de.User, "Verfasse alle Texte des Reiseplans auf Deutsch.")

	unknown := Build(c, paris, "xx")
	assert.Equal(t, "fr", unknown.Locale)
	assert.Equal(t, Build(c, paris, "fr"), unknown)
}

func TestBuildOmitsEmptyClauses(t *testing.T) {
	c := travelplan.Criteria{DestinationID: "paris-1", Duration: 2, EndDate: "2025-01-01", Accessibility: &travelplan.Accessibility{}}
	p := Build(c, paris, "fr")
	assert.NotContains(t, p.User, "Dates")
	assert.NotContains(t, p.User, "Accessibilité")
}

func TestResolveLocale(t *testing.T) {
	assert.Equal(t, "es", ResolveLocale("ES"))
	assert.Equal(t, "fr", ResolveLocale(""))
	assert.Equal(t, "de", ResolveLocale("de-AT"))
	assert.Equal(t, "it", ResolveLocale("it"))
	assert.Equal(t, "pt", ResolveLocale("pt-BR"))
	assert.Equal(t, "fr", ResolveLocale("nl"))
	assert.ElementsMatch(t, Locales(), []string{"fr", "en", "es", "de", "it", "pt"})
}
