// Command main is the entry point for the Glowup backend server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowup/internal/bootstrap"
	"glowup/internal/config"
	"glowup/internal/server"
	"glowup/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect DB and Redis, bootstrap the dev root admin and the
	// storefront catalog
	db, redisClient, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedBuiltIns: true})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	var store storage.ObjectStore
	s3Store, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		log.Printf("object storage unavailable, uploads disabled: %v", err)
	} else {
		store = s3Store
	}

	srv, err := server.NewServerWithDeps(cfg, db, redisClient, store)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Fatal(srv.Start())
}
