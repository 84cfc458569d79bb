package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"voyage/internal/app"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account for the protected endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminPassword == "" {
			adminPassword = os.Getenv("VOYAGE_ADMIN_PASSWORD")
		}
		return withApp(cmd, func(a *app.App) error {
			created, err := a.Admins.Create(cmd.Context(), adminEmail, adminPassword, adminName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", created.Email, created.ID)
			return nil
		})
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email (required)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password (default: VOYAGE_ADMIN_PASSWORD)")
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "display name")
	_ = createAdminCmd.MarkFlagRequired("email")
}
