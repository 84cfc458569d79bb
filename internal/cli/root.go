// README: voyagectl commands: migrate, seed, create-admin and generate, sharing one config/app bootstrap.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"voyage/internal/app"
	"voyage/internal/config"
)

var (
	cfgFile  string
	logLevel string
	cfg      config.Config
	logger   *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "voyagectl",
	Short: "Operate the voyage travel planner",
	Long: `voyagectl prepares the database, loads the reference catalog,
creates admin accounts and runs one-off itinerary generations
against the configured AI provider.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			if err := os.Setenv("VOYAGE_CONFIG", cfgFile); err != nil {
				return err
			}
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		logger = app.NewLogger(cfg.Log.Level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (default: VOYAGE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(generateCmd)
}

// Execute runs the root command; SIGINT cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// withApp wires the full application for the duration of fn.
func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	a, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
