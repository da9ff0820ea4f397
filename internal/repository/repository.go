// Package repository selects and opens the configured earthquake store.
package repository

import (
	"context"
	"fmt"

	"github.com/quakeapi/server/internal/config"
	"github.com/quakeapi/server/internal/domain"
	"github.com/quakeapi/server/internal/repository/memory"
	"github.com/quakeapi/server/internal/repository/mysql"
	"github.com/quakeapi/server/internal/repository/postgres"
	"github.com/quakeapi/server/internal/repository/sqlite"
)

// Store is an earthquake repository whose connection must be released
type Store interface {
	domain.EarthquakeRepository
	Close() error
}

// SeedableStore is a persistent store the seeder can write to
type SeedableStore interface {
	Store
	EnsureSchema(ctx context.Context) error
	Reset(ctx context.Context) error
	Insert(ctx context.Context, quakes []domain.Earthquake) error
}

// Open connects to the store named by cfg.StoreDriver
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.StoreDriver {
	case config.DriverMemory:
		store = memory.NewMemoryRepository(domain.SampleEarthquakes())
	case config.DriverSQLite:
		store, err = openSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		store, err = openPostgres(ctx, cfg.DatabaseURL)
	case config.DriverMySQL:
		store, err = openMySQL(ctx, cfg.MySQLDSN)
	default:
		err = fmt.Errorf("repository: unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

// The helpers below keep a typed nil pointer out of the Store interface

func openSQLite(path string) (Store, error) {
	r, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func openPostgres(ctx context.Context, url string) (Store, error) {
	r, err := postgres.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func openMySQL(ctx context.Context, dsn string) (Store, error) {
	r, err := mysql.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// OpenSeedable opens a persistent store; the memory driver is rejected
func OpenSeedable(ctx context.Context, cfg *config.Config) (SeedableStore, error) {
	if cfg.StoreDriver == config.DriverMemory {
		return nil, fmt.Errorf("repository: the %s driver cannot be seeded", cfg.StoreDriver)
	}

	store, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	seedable, ok := store.(SeedableStore)
	if !ok {
		_ = store.Close()
		return nil, fmt.Errorf("repository: the %s driver cannot be seeded", cfg.StoreDriver)
	}
	return seedable, nil
}
