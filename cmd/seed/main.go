// Command seed creates the earthquakes table and loads the sample catalogue.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/quakeapi/server/internal/config"
	"github.com/quakeapi/server/internal/domain"
	"github.com/quakeapi/server/internal/repository"
)

func main() {
	reset := flag.Bool("reset", false, "delete existing earthquakes before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := repository.OpenSeedable(ctx, cfg)
	if err != nil {
		log.Fatalf("Could not open %s store: %v", cfg.StoreDriver, err)
	}
	defer store.Close()

	if err := seed(ctx, store, domain.SampleEarthquakes(), *reset); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func seed(ctx context.Context, store repository.SeedableStore, quakes []domain.Earthquake, reset bool) error {
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	if reset {
		log.Println("Deleting existing earthquakes")
		if err := store.Reset(ctx); err != nil {
			return err
		}
	}
	if err := store.Insert(ctx, quakes); err != nil {
		return err
	}
	log.Printf("Seeded %d earthquakes", len(quakes))
	return nil
}
