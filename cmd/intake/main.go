package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codesubmit/intake/internal/blob"
	"codesubmit/intake/internal/config"
	"codesubmit/intake/internal/httpapi"
	"codesubmit/intake/internal/store"
	"codesubmit/intake/internal/store/postgres"
	"codesubmit/intake/internal/store/sqlite"
)

func main() {
	cfg := config.Load()
	log.Printf("application startup")

	var st store.Store
	var closer func()

	if cfg.DatabaseURL != "" {
		pg, err := postgres.NewStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to init postgres store: %v", err)
		}
		st = pg
		closer = pg.Close
		log.Printf("using postgres store")
	} else {
		lite, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("failed to init sqlite store: %v", err)
		}
		st = lite
		closer = lite.Close
		log.Printf("using sqlite store at %s", cfg.SQLitePath)
	}

	if closer != nil {
		defer closer()
	}

	blobs, err := blob.New(cfg.CodesDir)
	if err != nil {
		log.Fatalf("failed to init codes dir: %v", err)
	}

	srv := httpapi.NewServer(cfg, st, blobs)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("intake listening on %s", cfg.ListenAddr())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Printf("shutdown requested")
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)

	log.Printf("application shutdown")
}
