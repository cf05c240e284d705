package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"trip-itinerary-service/internal/adapters/cache"
	"trip-itinerary-service/internal/adapters/repositories"
	"trip-itinerary-service/internal/api"
	"trip-itinerary-service/internal/config"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	catalog, err := loadCatalog(db)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Catalog loaded destinations=%d", catalog.Len())

	// Response caching is optional; the service runs fine without Redis.
	var planCache ports.PlanCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis unavailable addr=%s err=%v (caching disabled)", cfg.RedisAddr, err)
		} else {
			planCache = cache.NewRedisPlanCache(client)
			log.Printf("Plan cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.CacheTTL)
		}
		defer client.Close()
	}

	router := api.NewRouter(catalog, planCache, cfg.CacheTTL)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

func loadCatalog(db *sql.DB) (*domain.Catalog, error) {
	repo := repositories.NewSqliteCatalogRepository(db)

	destinations, err := repo.ListDestinations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	catalog, err := domain.NewCatalog(destinations)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return catalog, nil
}
