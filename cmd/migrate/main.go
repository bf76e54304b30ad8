package main

import (
	"context"
	"flag"
	"os"

	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"bookmanager/internal/config"
	"bookmanager/internal/database"
	"bookmanager/internal/logging"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load(false)
	if err != nil {
		zap.L().Fatal("load config", zap.Error(err))
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		zap.L().Fatal("build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	if cfg.DBDriver != config.DriverPostgres {
		logger.Fatal("migrations target postgres only; use `bookctl init-db` for sqlite and mysql",
			zap.String("driver", cfg.DBDriver))
	}

	// create only writes a file, so it does not need a connection
	if *command == "create" {
		if err := run(nil, *command, cfg.MigrationsDir, *name); err != nil {
			logger.Fatal("migration failed", zap.String("command", *command), zap.Error(err))
		}
		logger.Info("migration created", zap.String("name", *name), zap.String("dir", cfg.MigrationsDir))
		return
	}

	ctx := context.Background()
	pool, err := database.OpenPostgres(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("connect to database", zap.String("dsn", config.RedactDSN(cfg.DBDSN)), zap.Error(err))
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := run(db, *command, cfg.MigrationsDir, *name); err != nil {
		logger.Error("migration failed", zap.String("command", *command), zap.Error(err))
		os.Exit(1)
	}
	logger.Info("migration command finished", zap.String("command", *command), zap.String("dir", cfg.MigrationsDir))
}
