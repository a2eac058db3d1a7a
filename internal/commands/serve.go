package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/setup"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger, db, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer helpers.DisconnectMongo(db)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = helpers.RedisHelper(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("opening export staging: %w", err)
		}
		defer redisClient.Close()
	}

	handler, err := setup.Server(cfg, db, redisClient, logger)
	if err != nil {
		return err
	}

	sm := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server is running", "port", cfg.Port)
		if err := sm.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case sig := <-sigChan:
		logger.Info("Received terminate, graceful shutdown",
			log.FieldOperation, log.OpShutdown,
			"signal", sig.String(),
		)
	}

	tc, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return sm.Shutdown(tc)
}
