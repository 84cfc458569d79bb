// README: Reference catalog loaded by `voyagectl seed`; re-running it updates rows in place.
package seed

import (
	"context"
	"fmt"

	"voyage/internal/modules/catalog"
	"voyage/internal/modules/destination"
)

type DestinationWriter interface {
	Upsert(ctx context.Context, d *destination.Destination) error
}

type CatalogWriter interface {
	UpsertActivity(ctx context.Context, a *catalog.Activity) error
	UpsertRestaurant(ctx context.Context, r *catalog.Restaurant) error
}

// Summary counts the rows written by Run.
type Summary struct {
	Destinations int
	Restaurants  int
	Activities   int
}

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }

func Destinations() []destination.Destination {
	return []destination.Destination{
		{
			ID:          "paris-1",
			Name:        "Paris",
			Country:     "France",
			City:        str("Paris"),
			Description: str("La capitale de la France, ville de la lumière"),
			ImageURL:    str("https://example.com/paris.jpg"),
		},
		{
			ID:          "tokyo-1",
			Name:        "Tokyo",
			Country:     "Japon",
			City:        str("Tokyo"),
			Description: str("Métropole moderne et traditionnelle du Japon"),
		},
	}
}

func Restaurants() []catalog.Restaurant {
	return []catalog.Restaurant{
		{ID: "paris-1-comptoir-du-relais", DestinationID: "paris-1", Name: "Le Comptoir du Relais", Cuisine: str("Française"), PriceRange: str("€€"),
			Address: str("9 Carrefour de l'Odéon, 75006 Paris"), Rating: num(4.5), Description: str("Bistrot parisien authentique")},
		{ID: "paris-1-as-du-fallafel", DestinationID: "paris-1", Name: "L'As du Fallafel", Cuisine: str("Moyen-Orientale"), PriceRange: str("€"),
			Address: str("34 Rue des Rosiers, 75004 Paris"), Rating: num(4.3)},
		{ID: "tokyo-1-sukiyabashi-jiro", DestinationID: "tokyo-1", Name: "Sukiyabashi Jiro", Cuisine: str("Japonaise"), PriceRange: str("€€€"),
			Address: str("Ginza, Tokyo"), Rating: num(5.0)},
	}
}

func Activities() []catalog.Activity {
	return []catalog.Activity{
		{ID: "paris-1-tour-eiffel", DestinationID: "paris-1", Name: "Visite de la Tour Eiffel", Type: str("Culture"), Duration: str("2h"), Price: str("25€"), Season: str("Toutes")},
		{ID: "paris-1-louvre", DestinationID: "paris-1", Name: "Musée du Louvre", Type: str("Culture"), Duration: str("3-4h"), Price: str("17€"), Season: str("Toutes")},
		{ID: "tokyo-1-senso-ji", DestinationID: "tokyo-1", Name: "Temple Senso-ji", Type: str("Culture"), Duration: str("1h"), Price: str("Gratuit"), Season: str("Toutes")},
		{ID: "tokyo-1-shibuya-crossing", DestinationID: "tokyo-1", Name: "Shibuya Crossing", Type: str("Découverte"), Duration: str("30min"), Price: str("Gratuit"), Season: str("Toutes")},
	}
}

// Run writes the reference catalog. Rows are keyed by stable IDs so a second
// run leaves the same data.
func Run(ctx context.Context, dests DestinationWriter, cat CatalogWriter) (Summary, error) {
	var s Summary
	for _, d := range Destinations() {
		if err := dests.Upsert(ctx, &d); err != nil {
			return s, fmt.Errorf("seed destination %s: %w", d.ID, err)
		}
		s.Destinations++
	}
	for _, r := range Restaurants() {
		if err := cat.UpsertRestaurant(ctx, &r); err != nil {
			return s, fmt.Errorf("seed restaurant %s: %w", r.ID, err)
		}
		s.Restaurants++
	}
	for _, a := range Activities() {
		if err := cat.UpsertActivity(ctx, &a); err != nil {
			return s, fmt.Errorf("seed activity %s: %w", a.ID, err)
		}
		s.Activities++
	}
	return s, nil
}
