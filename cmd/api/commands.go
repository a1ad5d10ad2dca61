package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yigit/alumnihub/internal/bootstrap"
	"github.com/yigit/alumnihub/internal/pkg/logger"
	"github.com/yigit/alumnihub/internal/seed"
	"github.com/yigit/alumnihub/internal/server"
)

var configPath string

// rootCmd serves the API when no subcommand is given
var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "AlumniHub API server",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations (postgres) or create indexes (mongo)",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the configured admin account",
	Long: `Create the admin account from the admin section of the configuration
(ADMIN_NAME, ADMIN_EMAIL, ADMIN_PASSWORD). Nothing happens when the email is already registered.`,
	RunE: runSeed,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", filepath.Join("configs", "config.yaml"), "Path to the YAML configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.NewServer(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Run blocks until SIGINT/SIGTERM
	if err := srv.Run(cmd.Context()); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	// Opening the store applies migrations and indexes
	store, err := bootstrap.OpenStore(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	lgr.Info().Str("driver", store.Driver).Msg("Schema is up to date")
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(cmd.Context(), cfg, lgr)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	created, err := seed.CreateDefaultAdmin(cmd.Context(), store.Repos.UserRepository, seed.Admin{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, lgr)
	if err != nil {
		return err
	}

	lgr.Info().Bool("created", created).Msg("Seed finished")
	return nil
}
