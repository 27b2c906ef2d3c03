package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/config"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/migrate"
)

func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", migrate.DefaultDir, "directory with migration files")
	flag.Parse()

	command := "up"
	if args := flag.Args(); len(args) > 0 {
		command = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "kisanbazaar-migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	ctx := context.Background()

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "database init failed", err)
		os.Exit(1)
	}
	defer client.Close()

	sqlDB, err := client.DB().DB()
	if err != nil {
		logg.Error(ctx, "extracting sql.DB failed", err)
		os.Exit(1)
	}

	var extra []string
	if args := flag.Args(); len(args) > 1 {
		extra = args[1:]
	}

	ctx = logg.WithFields(ctx, map[string]any{"command": command, "dir": *dir})
	logg.Info(ctx, "running migrations")

	if err := migrate.Run(ctx, sqlDB, *dir, command, extra...); err != nil {
		logg.Error(ctx, "migration failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "migrations completed")
}
