// Package main is the entry point for the contacts API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"contactbook/src/app/server"
	"contactbook/src/core/ports"
	"contactbook/src/infra/config"
	"contactbook/src/infra/db"
	"contactbook/src/infra/hasher"
	"contactbook/src/infra/logger"
	"contactbook/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
		"log_level", cfg.Log.Level,
	)

	ctx := context.Background()

	store, err := db.New(ctx, cfg.Database, logger.WithComponent(log, "db"))
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Database.Migrate {
		if err := store.Migrate(ctx); err != nil {
			return err
		}
	}

	contacts := repo.NewContactRepository(store, logger.WithComponent(log, "contact_repo"))
	users := repo.NewUserRepository(store, logger.WithComponent(log, "user_repo"))

	srv := server.New(cfg, log, server.Deps{
		Contacts: contacts,
		Users:    users,
		Hasher:   hasher.NewBcrypt(cfg.Security.BcryptCost),
		Probes:   map[string]ports.ExternalService{"database": store},
	})

	return srv.Run()
}
