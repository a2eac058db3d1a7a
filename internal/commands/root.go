package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/setup/config"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered. Without a subcommand it serves HTTP.
func NewRootCommand() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "smartspend",
		Short: "Personal finance tracking API",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadEnvFile(envFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newRecalculateCommand())

	return rootCmd
}

// bootstrap reads and validates the configuration, installs the default
// logger and connects to MongoDB.
func bootstrap(ctx context.Context) (*config.Config, *log.Logger, *mongo.Database, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: log.ComponentApp,
		Output:    os.Stdout,
	})
	log.SetDefault(logger)

	helpers.Timeout = cfg.MongoTimeout

	db, err := helpers.MongoHelper(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening store: %w", err)
	}

	if err := helpers.EnsureIndexes(ctx, db); err != nil {
		logger.WithComponent(log.ComponentStorage).Warn("Could not ensure indexes",
			log.FieldOperation, log.OpStartup,
			log.FieldError, err,
		)
	}

	slog.Debug("Configuration loaded",
		"port", cfg.Port,
		"database", cfg.MongoDatabase,
		"timezone", cfg.Timezone,
		"export_enabled", cfg.RedisURL != "",
		"token_identity_enabled", cfg.SecretJWT != "",
	)

	return cfg, logger, db, nil
}
