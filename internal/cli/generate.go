package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"voyage/internal/app"
	"voyage/internal/modules/travelplan"
)

var genFlags struct {
	destination string
	duration    int
	locale      string
	theme       string
	style       string
	travelType  string
	budget      string
	startDate   string
	endDate     string
	activities  []string
	dietary     []string
	transport   []string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate (or reuse) an itinerary and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := criteriaFromFlags()
		return withApp(cmd, func(a *app.App) error {
			plan, err := a.Plans.GeneratePlan(cmd.Context(), c)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		})
	},
}

func criteriaFromFlags() travelplan.Criteria {
	return travelplan.Criteria{
		DestinationID:       genFlags.destination,
		Duration:            genFlags.duration,
		Locale:              genFlags.locale,
		Theme:               genFlags.theme,
		TravelStyle:         genFlags.style,
		TravelType:          genFlags.travelType,
		Budget:              genFlags.budget,
		StartDate:           genFlags.startDate,
		EndDate:             genFlags.endDate,
		PreferredActivities: genFlags.activities,
		DietaryPreferences:  genFlags.dietary,
		Transport:           genFlags.transport,
	}
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genFlags.destination, "destination", "", "destination id (required)")
	f.IntVar(&genFlags.duration, "duration", 3, "trip length in days")
	f.StringVar(&genFlags.locale, "locale", "", "output locale, e.g. fr or en")
	f.StringVar(&genFlags.theme, "theme", "", "trip theme")
	f.StringVar(&genFlags.style, "style", "", "travel style")
	f.StringVar(&genFlags.travelType, "travel-type", "", "familial, romantique, entre-amis, solo or business")
	f.StringVar(&genFlags.budget, "budget", "", "free-form budget")
	f.StringVar(&genFlags.startDate, "start", "", "start date (YYYY-MM-DD)")
	f.StringVar(&genFlags.endDate, "end", "", "end date (YYYY-MM-DD)")
	f.StringSliceVar(&genFlags.activities, "activity", nil, "preferred activity (repeatable)")
	f.StringSliceVar(&genFlags.dietary, "dietary", nil, "dietary preference (repeatable)")
	f.StringSliceVar(&genFlags.transport, "transport", nil, "transport mode (repeatable)")
	_ = generateCmd.MarkFlagRequired("destination")
}
