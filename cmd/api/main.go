package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/harentsoaR/doctors-portal-api/internal/config"
	"github.com/harentsoaR/doctors-portal-api/internal/logger"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "api",
		Short:         "Doctors portal booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context(), envFile)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the default appointment options into an empty catalog",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd.Context(), envFile, func(ctx context.Context, st *store.Store, log *logrus.Logger) error {
					n, err := st.Seed(ctx)
					if err != nil {
						return fmt.Errorf("seed appointment options: %w", err)
					}
					log.WithField("inserted", n).Info("seed complete")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "indexes",
			Short: "Create the unique user and booking indexes",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd.Context(), envFile, func(ctx context.Context, st *store.Store, log *logrus.Logger) error {
					names, err := st.EnsureIndexes(ctx, true)
					if err != nil {
						return fmt.Errorf("create indexes: %w", err)
					}
					log.WithField("indexes", names).Info("indexes ready")
					return nil
				})
			},
		},
	)
	return root
}

// withStore runs fn against a connected store and disconnects afterwards.
func withStore(ctx context.Context, envFile string, fn func(context.Context, *store.Store, *logrus.Logger) error) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)

	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer disconnect(client, log)

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	return fn(ctx, store.New(client.Database(cfg.MongoDatabase)), log)
}

func disconnect(client *mongo.Client, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.WithError(err).Warn("failed to disconnect from MongoDB")
	}
}
