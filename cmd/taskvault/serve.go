// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/taskvault/taskvault/internal/auth"
	authpg "github.com/taskvault/taskvault/internal/auth/postgres"
	"github.com/taskvault/taskvault/internal/config"
	"github.com/taskvault/taskvault/internal/httpapi"
	"github.com/taskvault/taskvault/internal/logging"
	"github.com/taskvault/taskvault/internal/observability"
	"github.com/taskvault/taskvault/internal/store"
	"github.com/taskvault/taskvault/internal/todo"
	todopg "github.com/taskvault/taskvault/internal/todo/postgres"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  `Start the HTTP API server along with the metrics and health endpoints.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	logging.SetDefault("taskvault", version, cfg.LogFormat)
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := store.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	codec, err := auth.NewJWTCodec(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}
	accounts, err := auth.NewAccountServiceWithLogger(
		authpg.NewAccountRepository(pool),
		auth.NewArgon2idHasher(),
		codec,
		logger,
	)
	if err != nil {
		return err
	}

	todoRepo := todopg.NewTodoRepository(pool)
	todos, err := todo.NewService(todo.ServiceConfig{
		Creator: todoRepo,
		Counter: todoRepo,
		Lister:  todoRepo,
		Getter:  todoRepo,
		Updater: todoRepo,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	api, err := httpapi.NewServer(httpapi.ServerConfig{
		Accounts: accounts,
		Todos:    todos,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	obs := observability.NewServer(cfg.MetricsAddr, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return pool.Ping(pingCtx) == nil
	})
	todo.RegisterMetrics(obs.Registry())

	obsErrCh, err := obs.Start()
	if err != nil {
		return err
	}

	apiErrCh := make(chan error, 1)
	go func() {
		apiErrCh <- api.Start(cfg.HTTP.Addr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-apiErrCh:
		if err != nil {
			runErr = oops.With("component", "http").Wrap(err)
		}
	case err, ok := <-obsErrCh:
		if ok && err != nil {
			runErr = oops.With("component", "observability").Wrap(err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := api.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	if err := obs.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
