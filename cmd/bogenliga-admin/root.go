package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bogenliga/internal/config"
	"bogenliga/internal/domain/auth"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/auth_repo"
	"bogenliga/pkg/logger"
)

// env carries what every subcommand needs once the database is reachable.
type env struct {
	cfg  config.Config
	pool *postgres.Pool
}

// opener connects to the database. Tests replace it.
type opener func(ctx context.Context) (*env, func(), error)

func execute() int {
	root := newRootCmd(openFromEnv)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "bogenliga-admin",
		Short:         "Operator tasks for the bogenliga backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(open),
		newVerifySchemaCmd(open),
		newUserCmd(open),
		newTokenCmd(open),
	)
	return root
}

func openFromEnv(ctx context.Context) (*env, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: true})
	if err != nil {
		return nil, nil, err
	}
	logger.SetDefault(log)

	pool, err := postgres.NewPool(ctx, postgres.PoolConfigFrom(cfg))
	if err != nil {
		return nil, nil, err
	}
	return &env{cfg: cfg, pool: pool}, func() {
		pool.Close()
		_ = log.Sync()
	}, nil
}

func (e *env) authService() *auth.Service {
	txManager := postgres.NewTxManager(e.pool)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:         e.cfg.JWTSecret,
		Issuer:         e.cfg.JWTIssuer,
		AccessTokenTTL: e.cfg.JWTTTL,
	})
	return auth.NewService(auth_repo.NewUserRepo(txManager), txManager, jwtService, auth.DefaultServiceConfig())
}
