package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"poi-logistics-service/internal/adapters/repositories"
	"poi-logistics-service/internal/api"
	"poi-logistics-service/internal/config"
	"poi-logistics-service/internal/logistics"
	"poi-logistics-service/internal/platform/db"
	"poi-logistics-service/internal/ports"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

// main is the application composition root.
// It builds the logistics engine from configuration, wires an optional POI
// repository (PostgreSQL, or a seed file held in memory) and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := config.Get("PORT", "8080")

	params, err := config.LoadParams()
	if err != nil {
		return err
	}
	engine, err := logistics.NewEngine(params)
	if err != nil {
		return err
	}
	log.Printf(
		"Logistics engine ready road_factor=%.2f walk_km=%.2f transit_km=%.2f",
		params.RoadFactor, params.WalkThresholdKm, params.TransitThresholdKm,
	)

	repo, closeRepo, err := openRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	router := api.NewRouter(engine, repo)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openRepository prefers DATABASE_URL, falls back to SEED_PATH held in memory,
// and returns a nil repository when neither is set.
func openRepository(ctx context.Context) (ports.POIRepository, func(), error) {
	noop := func() {}

	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		conn, err := db.Open(ctx, databaseURL)
		if err != nil {
			return nil, noop, err
		}

		initDB, err := config.Bool("INIT_DB", false)
		if err != nil {
			conn.Close()
			return nil, noop, err
		}
		if initDB {
			if err := initAndSeed(ctx, conn, config.Get("SEED_PATH", "")); err != nil {
				conn.Close()
				return nil, noop, err
			}
		}

		log.Println("POI repository: postgres")
		return repositories.NewPostgresPOIRepository(conn), func() { conn.Close() }, nil
	}

	if seedPath := config.Get("SEED_PATH", ""); seedPath != "" {
		pois, err := repositories.LoadSeeds(seedPath)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("POI repository: static seed=%s pois=%d", seedPath, len(pois))
		return repositories.NewStaticPOIRepository(pois), noop, nil
	}

	log.Println("POI repository: none (planning by poi_ids disabled)")
	return nil, noop, nil
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if seedPath == "" {
		return nil
	}

	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
