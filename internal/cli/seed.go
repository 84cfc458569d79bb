package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"voyage/internal/app"
	"voyage/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the reference destinations, restaurants and activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app.App) error {
			s, err := seed.Run(cmd.Context(), a.Destinations, a.Catalog)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d destinations, %d restaurants, %d activities\n",
				s.Destinations, s.Restaurants, s.Activities)
			return nil
		})
	},
}
