package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kmrl-docs/dochub/internal/api"
	"github.com/kmrl-docs/dochub/internal/artifact"
	"github.com/kmrl-docs/dochub/internal/config"
	"github.com/kmrl-docs/dochub/internal/engine"
	"github.com/kmrl-docs/dochub/internal/mail"
	"github.com/kmrl-docs/dochub/internal/store"
	"github.com/kmrl-docs/dochub/internal/worker"
)

func main() {
	cfg := config.Load()

	// Open SQLite registry.
	db, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	registry, err := store.New(db)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}

	artifacts, err := artifact.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("init artifact store: %v", err)
	}

	// Build pipeline dependencies.
	extractor := engine.NewExtractor(engine.NewTesseractEngine(), engine.NewFitzOpener())

	var translationClient engine.TranslationClient
	switch {
	case cfg.UseStubTranslator():
		log.Println("using stub translation client")
		translationClient = &engine.StubTranslator{}
	case cfg.TranslateProvider == "libretranslate":
		log.Println("using LibreTranslate client")
		translationClient = engine.NewLibreTranslateClient(cfg.LibreTranslateURL,
			engine.WithLibreTranslateKey(cfg.LibreTranslateKey),
			engine.WithLibreTranslateTimeout(cfg.HTTPTimeout))
	default:
		log.Println("using Google translation client")
		translationClient = engine.NewGoogleClient(engine.WithGoogleTimeout(cfg.HTTPTimeout))
	}

	pipeline := engine.NewPipeline(extractor, engine.NewTranslator(translationClient), artifacts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire the mailbox sweep when credentials are present.
	var sweeper api.Sweeper
	if cfg.MailConfigured() {
		dialer := mail.IMAPDialer{Addr: cfg.IMAPAddr, Username: cfg.IMAPUser, Password: cfg.IMAPPassword}
		sw := mail.NewSweeper(dialer, pipeline, artifacts, registry,
			cfg.IMAPMailbox, mail.SearchMode(cfg.SweepMode), cfg.SweepLimit)
		sweeper = sw
		if cfg.SweepInterval > 0 {
			go worker.New(sw, cfg.SweepInterval).Start(ctx)
		}
	} else {
		log.Println("IMAP_USER/IMAP_PASSWORD not set, mailbox sweep disabled")
	}

	// Start API server.
	srv := api.New(api.Params{
		Registry:   registry,
		Artifacts:  artifacts,
		Pipeline:   pipeline,
		Sweeper:    sweeper,
		MaxUpload:  cfg.MaxUploadSize,
		CORSOrigin: cfg.CORSOrigin,
	})
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Handler(),
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		cancel()
		httpServer.Shutdown(context.Background())
	}()

	fmt.Printf("dochub server listening on http://localhost:%s\n", cfg.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
