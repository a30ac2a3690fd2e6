package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benchlab/bench-api/internal/config"
	"github.com/benchlab/bench-api/internal/db"
	"github.com/benchlab/bench-api/internal/item"
)

func main() {
	cfg := config.Load()

	var repo item.Repository
	switch cfg.DBBackend {
	case "postgres":
		pool, err := db.ConnectPostgres(context.Background(), cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("[db] postgres init failed: %v", err)
		}
		defer pool.Close()
		repo = item.NewPGRepo(pool)
	default:
		sq, err := db.ConnectSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("[db] sqlite init failed: %v", err)
		}
		defer sq.Close()
		repo = item.NewSQLiteRepo(sq)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: buildRouter(repo),
	}

	go func() {
		log.Printf("[http] bench-service listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[http] listen failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[http] shutdown failed: %v", err)
	}
	log.Println("[http] server stopped")
}
