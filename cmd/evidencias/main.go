package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"evidencias/internal/adapter/api"
	adapthttp "evidencias/internal/adapter/http"
	"evidencias/internal/adapter/memory"
	"evidencias/internal/adapter/postgres"
	"evidencias/internal/app"
	"evidencias/internal/config"
	"evidencias/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	log.Printf("starting with %s", cfg)

	var sessions domain.SessionRepository
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		sessions = postgres.NewSessionRepo(db)
	} else {
		// Sessions do not survive a restart without a database.
		log.Print("DATABASE_URL not set, using in-memory sessions")
		sessions = memory.NewSessionRepo()
	}

	gateway := api.New(cfg.APIBaseURL)
	drafts := app.NewDraftStore()

	authSvc := app.NewAuthService(gateway, sessions, cfg.SessionKey)
	expSvc := app.NewExpedienteService(gateway, drafts)
	repSvc := app.NewReporteService(gateway)

	oidcCfg, err := adapthttp.NewOIDC(context.Background(), cfg.OIDC)
	if err != nil {
		log.Fatalf("oidc: %v", err)
	}

	go purgeSessions(authSvc)

	h := adapthttp.New(authSvc, expSvc, repSvc, drafts, oidcCfg).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func purgeSessions(auth *app.AuthService) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := auth.PurgeExpired(ctx); err != nil {
			log.Printf("purge sessions: %v", err)
		}
		cancel()
	}
}
