package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/avasiljevs/learnkeeper/internal/access"
	"github.com/avasiljevs/learnkeeper/internal/app"
	"github.com/avasiljevs/learnkeeper/internal/buildinfo"
	"github.com/avasiljevs/learnkeeper/internal/config"
	"github.com/avasiljevs/learnkeeper/internal/entitlement"
	"github.com/avasiljevs/learnkeeper/internal/kv"
	"github.com/avasiljevs/learnkeeper/internal/logging"
	"github.com/avasiljevs/learnkeeper/internal/session"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := kv.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer db.Close()

	// The session record is encrypted at rest unless the secret is
	// explicitly emptied out.
	var backing kv.Store = db
	if cfg.StoreSecret != "" {
		secure, err := kv.OpenSecure(ctx, db, []byte(cfg.StoreSecret))
		if err != nil {
			log.Fatalf("open secure store: %v", err)
		}
		backing = secure
	}

	store := session.NewStore(backing, logger)
	issuer := entitlement.NewIssuer([]byte(cfg.GrantSecret), cfg.GrantTTL)
	controller := session.NewController(store, issuer, logger, cfg.LoginDelay)
	policy := access.NewPolicy(entitlement.NewVerifier([]byte(cfg.GrantSecret)))

	a := app.New(cfg, controller, policy, logger, os.Stdin, os.Stdout)
	if err := a.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
