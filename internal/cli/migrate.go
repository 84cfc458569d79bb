package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"voyage/internal/infra"
)

var migrationsDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the SQL migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := infra.NewDB(cmd.Context(), cfg.DB.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		applied, err := infra.ApplyMigrations(cmd.Context(), db, migrationsDir)
		for _, name := range applied {
			fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", name)
		}
		return err
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "migrations", "directory holding the *.sql files")
}
